package wallet

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrBadSignature = errors.New("signature does not match wallet")

// VerifyPersonalSign verifies an EIP-191 personal_sign signature over message
// and checks that the recovered signer equals the expected wallet.
func VerifyPersonalSign(message, signatureHex, expectedWallet string) error {
	sig, err := hexutil.Decode(signatureHex)
	if err != nil || len(sig) != 65 {
		return ErrBadSignature
	}

	// Wallets return V as 27/28; go-ethereum expects 0/1
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return ErrBadSignature
	}

	hash := accounts.TextHash([]byte(message))
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return ErrBadSignature
	}

	recovered := Normalize(crypto.PubkeyToAddress(*pub).Hex())
	if recovered != Normalize(expectedWallet) {
		return ErrBadSignature
	}
	return nil
}
