package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (ConnectionRequest{}).TableName(); got != "connection_requests" {
		t.Fatalf("unexpected ConnectionRequest table name: %s", got)
	}
	if got := (Persona{}).TableName(); got != "personas" {
		t.Fatalf("unexpected Persona table name: %s", got)
	}
	if got := (Event{}).TableName(); got != "events" {
		t.Fatalf("unexpected Event table name: %s", got)
	}
}
