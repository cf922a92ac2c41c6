package services

import (
	"net/http"
	"testing"

	"github.com/ecotrack/wastenexus/models"
	"github.com/ecotrack/wastenexus/rewards"
)

func newTestMarketplaceService(users ...*models.User) (MarketplaceService, *fakeTransactionRepo) {
	itemRepo := newFakeMarketplaceRepo()
	rewardSvc, txRepo := newTestRewardService(users...)
	return NewMarketplaceService(itemRepo, rewardSvc, testConfig()), txRepo
}

func TestApproveItemPaysFixedAward(t *testing.T) {
	svc, txRepo := newTestMarketplaceService(testUser(1, 0))
	adminID := uint(9)

	item, err := svc.ListItem(1, &models.CreateItemRequest{
		Title:     "Working bicycle",
		Category:  "transport",
		Condition: "used",
	})
	if err != nil {
		t.Fatalf("ListItem: %v", err)
	}
	if item.Status != models.ItemStatusPending {
		t.Fatalf("expected pending status, got %s", item.Status)
	}

	approved, err := svc.ApproveItem(item.ID, adminID)
	if err != nil {
		t.Fatalf("ApproveItem: %v", err)
	}
	if approved.PointsAwarded != rewards.MarketplaceApprovalPoints {
		t.Errorf("expected %d points, got %d", rewards.MarketplaceApprovalPoints, approved.PointsAwarded)
	}
	if approved.Item.Status != models.ItemStatusApproved {
		t.Errorf("expected approved status, got %s", approved.Item.Status)
	}

	// approving again conflicts and must not pay twice
	_, err = svc.ApproveItem(item.ID, adminID)
	assertStatus(t, err, http.StatusConflict)
	if len(txRepo.transactions) != 1 {
		t.Errorf("expected 1 ledger row, got %d", len(txRepo.transactions))
	}
}

func TestRejectItemAwardsNothing(t *testing.T) {
	svc, txRepo := newTestMarketplaceService(testUser(1, 0))

	item, err := svc.ListItem(1, &models.CreateItemRequest{Title: "Old pallets"})
	if err != nil {
		t.Fatalf("ListItem: %v", err)
	}
	rejected, err := svc.RejectItem(item.ID, 9)
	if err != nil {
		t.Fatalf("RejectItem: %v", err)
	}
	if rejected.Status != models.ItemStatusRejected {
		t.Errorf("expected rejected status, got %s", rejected.Status)
	}
	if len(txRepo.transactions) != 0 {
		t.Errorf("rejection must not pay, found %d ledger rows", len(txRepo.transactions))
	}
}
