package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	loanDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	"github.com/Marceldinga/theyoungshallgrow--sub000/pkg/id"
)

func TestRequestCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	requestID := id.NewID32()
	req := &loanDomain.Request{
		RequestID:  requestID,
		BorrowerID: 3,
		SuretyID:   8,
		Amount:     2000,
		Status:     loanDomain.RequestPending,
	}
	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.BorrowerID != 3 || got.Status != loanDomain.RequestPending {
		t.Fatalf("unexpected request: %+v", got)
	}
}

func TestRequestSave_TransitionPersists(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	requestID := id.NewID32()
	req := &loanDomain.Request{RequestID: requestID, BorrowerID: 4, SuretyID: 9, Amount: 1500, Status: loanDomain.RequestPending}
	if err := repo.Create(ctx, req); err != nil {
		t.Fatal(err)
	}

	req.Status = loanDomain.RequestDenied
	req.Reason = "insufficient surety cover"
	if err := repo.Save(ctx, req); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByRequestIDForUpdate(ctx, requestID)
	if err != nil {
		t.Fatalf("GetByRequestIDForUpdate: %v", err)
	}
	if got.Status != loanDomain.RequestDenied || got.Reason == "" {
		t.Fatalf("transition lost: %+v", got)
	}
}

func TestRequestGetByRequestID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)

	_, err := repo.GetByRequestID(context.Background(), "cccccccccccccccccccccccccccccccc")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
