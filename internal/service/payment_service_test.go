package service

import (
	"testing"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
)

func TestApplySettlementSuccessActivatesSubscription(t *testing.T) {
	payment := &model.Payment{Status: model.PaymentPending}
	sub := &model.Subscription{Status: model.SubscriptionPending}

	applySettlement(payment, sub, SettleRequest{Success: true})
	if payment.Status != model.PaymentCompleted {
		t.Fatalf("payment status = %q, want completed", payment.Status)
	}
	if sub.Status != model.SubscriptionActive {
		t.Fatalf("subscription status = %q, want active", sub.Status)
	}
}

func TestApplySettlementFailureCancelsSubscription(t *testing.T) {
	payment := &model.Payment{Status: model.PaymentPending}
	sub := &model.Subscription{Status: model.SubscriptionPending}

	applySettlement(payment, sub, SettleRequest{Success: false, FailureReason: "card declined"})
	if payment.Status != model.PaymentFailed {
		t.Fatalf("payment status = %q, want failed", payment.Status)
	}
	if payment.FailureReason != "card declined" {
		t.Fatalf("failure reason = %q, want card declined", payment.FailureReason)
	}
	if sub.Status != model.SubscriptionCanceled {
		t.Fatalf("subscription status = %q, want canceled", sub.Status)
	}
}

func TestApplySettlementToleratesMissingSubscription(t *testing.T) {
	payment := &model.Payment{Status: model.PaymentPending}

	applySettlement(payment, nil, SettleRequest{Success: true})
	if payment.Status != model.PaymentCompleted {
		t.Fatalf("payment status = %q, want completed", payment.Status)
	}
}
