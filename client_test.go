package sevadex

import (
	"context"
	"testing"
)

func TestNew_NoAddress(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no address provided")
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := &clientConfig{driver: "postgres", addrs: []string{"localhost:1234"}}
	_, err := createStore(cfg)
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestOptions(t *testing.T) {
	cfg := &clientConfig{}
	for _, o := range []Option{
		WithValkey("localhost:6379"),
		WithAuth("svc", "secret"),
		WithKeyPrefix("portal:"),
	} {
		o(cfg)
	}

	if cfg.driver != "valkey" || len(cfg.addrs) != 1 {
		t.Errorf("driver/addrs = %q/%v", cfg.driver, cfg.addrs)
	}
	if cfg.username != "svc" || cfg.password != "secret" {
		t.Error("auth option not applied")
	}
	if cfg.keyPrefix != "portal:" {
		t.Errorf("keyPrefix = %q", cfg.keyPrefix)
	}
}
