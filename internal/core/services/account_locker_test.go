package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_sim/internal/core/services"
)

func TestAccountLocker_SerialisesSameAccount(t *testing.T) {
	locker := services.NewAccountLocker()
	unlock := locker.Lock("b", "a", "a")

	acquired := make(chan struct{})
	go func() {
		release := locker.Lock("a")
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("lock on a was acquired while held")
	default:
	}
	unlock()
	<-acquired
}

func TestAccountLocker_OtherAccountsStayFree(t *testing.T) {
	locker := services.NewAccountLocker()
	unlock := locker.Lock("a")
	defer unlock()

	done := make(chan struct{})
	go func() {
		release := locker.Lock("b", "c")
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("locking b and c waited on a")
	}
}
