package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/micromart/internal/config"
	testhelpers "github.com/polkiloo/micromart/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewDirectoryServer(t *testing.T) {
	engine := gin.New()
	server := newDirectoryServer(directoryServerParams{
		Config: &config.DirectoryConfig{RunAddress: "localhost:8001"},
		Router: engine,
	})

	if server.Addr != "localhost:8001" {
		t.Fatalf("expected address localhost:8001, got %s", server.Addr)
	}
	if server.Handler == nil {
		t.Fatal("expected router to be attached")
	}
}

func TestNewOrderServer(t *testing.T) {
	engine := gin.New()
	server := newOrderServer(orderServerParams{
		Config: &config.OrderConfig{RunAddress: "localhost:8002"},
		Router: engine,
	})

	if server.Addr != "localhost:8002" {
		t.Fatalf("expected address localhost:8002, got %s", server.Addr)
	}
	if server.Handler == nil {
		t.Fatal("expected router to be attached")
	}
}

func TestRegisterServerAppendsHooks(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	server := &http.Server{Addr: "localhost:0"}

	registerServer(recorder, &testhelpers.ShutdownerStub{}, discardLogger(), server, "test service", time.Second)

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook, got %d", len(recorder.Hooks))
	}
	hook := recorder.Hooks[0]
	if hook.OnStart == nil || hook.OnStop == nil {
		t.Fatal("expected both start and stop hooks")
	}
}

func TestRegisterServerStopShutsDownServer(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	server := &http.Server{Addr: "localhost:0"}

	registerServer(recorder, &testhelpers.ShutdownerStub{}, discardLogger(), server, "test service", time.Second)

	hook := recorder.Hooks[0]
	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("expected clean shutdown of idle server, got %v", err)
	}
}

func TestRegisterServerStartFailureTriggersShutdown(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "invalid-address:-1"}

	registerServer(recorder, shutdowner, discardLogger(), server, "test service", time.Second)

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("start hook must not block on listen errors, got %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(2 * time.Second):
		t.Fatal("expected shutdowner to be invoked on listen failure")
	}
}
