// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-store-locator/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestAccountCtxKey(t *testing.T) {
	if AccountCtxKey.String() != "account" {
		t.Errorf("expected 'account', got '%s'", AccountCtxKey.String())
	}
}

func TestGetAccountFromContext_Success(t *testing.T) {
	ctx := WithAccount(context.Background(), &models.Account{ID: "acc-1"})

	account, ok := GetAccountFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if account.ID != "acc-1" {
		t.Errorf("expected account ID 'acc-1', got '%s'", account.ID)
	}
}

func TestGetAccountFromContext_Missing(t *testing.T) {
	account, ok := GetAccountFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if account != nil {
		t.Errorf("expected nil account, got %+v", account)
	}
}

func TestGetAccountFromContext_NilPointer(t *testing.T) {
	ctx := WithAccount(context.Background(), nil)

	if _, ok := GetAccountFromContext(ctx); ok {
		t.Fatal("expected ok=false for nil account, got true")
	}
}

func TestGetAccountFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountCtxKey, models.Account{ID: "acc-1"})

	if _, ok := GetAccountFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetAccountFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), &models.Account{ID: "acc-1"})

	if _, ok := GetAccountFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
