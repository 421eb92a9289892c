package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/model"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/repository"
	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"gorm.io/gorm"
)

type PaymentService struct {
	SubRepo     *repository.SubscriptionRepository
	PaymentRepo *repository.PaymentRepository
}

func NewPaymentService(subRepo *repository.SubscriptionRepository, paymentRepo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{SubRepo: subRepo, PaymentRepo: paymentRepo}
}

func (s *PaymentService) ListPlans() ([]model.Plan, error) {
	return s.SubRepo.ListPlans(true)
}

type PlanRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" binding:"required"`
	DurationDays int      `json:"durationDays" binding:"required"`
	Features     []string `json:"features"`
	Active       *bool    `json:"active"`
}

func (s *PaymentService) CreatePlan(req PlanRequest) (*model.Plan, error) {
	p := &model.Plan{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		Features:     req.Features,
		Active:       true,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.SubRepo.CreatePlan(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) UpdatePlan(id uint, req PlanRequest) (*model.Plan, error) {
	p, err := s.SubRepo.FindPlanByID(id)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.DurationDays = req.DurationDays
	p.Features = req.Features
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.SubRepo.UpdatePlan(p); err != nil {
		return nil, err
	}
	return p, nil
}

type SubscribeRequest struct {
	PlanID uint `json:"planId" binding:"required"`
}

type SubscribeResponse struct {
	Subscription *model.Subscription `json:"subscription"`
	Payment      *model.Payment      `json:"payment"`
}

// Subscribe creates a subscription and its pending payment record. The
// subscription activates when the payment settles; no gateway is involved.
func (s *PaymentService) Subscribe(userID uint, req SubscribeRequest) (*SubscribeResponse, error) {
	plan, err := s.SubRepo.FindPlanByID(req.PlanID)
	if err != nil || !plan.Active {
		return nil, util.ErrPlanNotFound
	}

	now := time.Now()
	sub := &model.Subscription{
		UserID:    userID,
		PlanID:    plan.ID,
		StartsAt:  now,
		ExpiresAt: now.AddDate(0, 0, plan.DurationDays),
		Status:    model.SubscriptionPending,
	}
	if err := s.SubRepo.Create(sub); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		UserID:         userID,
		SubscriptionID: sub.ID,
		Amount:         plan.Price,
		Currency:       "INR",
		Status:         model.PaymentPending,
		Reference:      fmt.Sprintf("SUB-%d-%d", sub.ID, now.Unix()),
	}
	if err := s.PaymentRepo.Create(payment); err != nil {
		return nil, err
	}

	return &SubscribeResponse{Subscription: sub, Payment: payment}, nil
}

type SettleRequest struct {
	Success       bool   `json:"success"`
	FailureReason string `json:"failureReason"`
}

// applySettlement moves a pending payment and its subscription to their
// settled states: success activates the subscription, failure cancels it.
func applySettlement(payment *model.Payment, sub *model.Subscription, req SettleRequest) {
	if req.Success {
		payment.Status = model.PaymentCompleted
		if sub != nil {
			sub.Status = model.SubscriptionActive
		}
		return
	}
	payment.Status = model.PaymentFailed
	payment.FailureReason = req.FailureReason
	if sub != nil {
		sub.Status = model.SubscriptionCanceled
	}
}

// Settle finalizes a pending payment. The subscription stays pending until a
// successful settlement; a failed one cancels it.
func (s *PaymentService) Settle(paymentID string, userID uint, req SettleRequest) (*model.Payment, error) {
	payment, err := s.PaymentRepo.FindByID(paymentID)
	if err != nil {
		return nil, util.ErrPaymentNotFound
	}
	if payment.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if payment.Status != model.PaymentPending {
		return nil, util.ErrPaymentSettled
	}

	sub, _ := s.SubRepo.FindByID(payment.SubscriptionID)
	applySettlement(payment, sub, req)
	if sub != nil {
		_ = s.SubRepo.Update(sub)
	}

	if err := s.PaymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) ActiveSubscription(userID uint) (*model.Subscription, error) {
	sub, err := s.SubRepo.FindActiveByUser(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoActiveSub
	}
	return sub, err
}

func (s *PaymentService) ListUserSubscriptions(userID uint) ([]model.Subscription, error) {
	return s.SubRepo.ListByUser(userID)
}

func (s *PaymentService) ListUserPayments(userID uint, page, limit int) ([]model.Payment, int64, error) {
	return s.PaymentRepo.ListByUser(userID, page, limit)
}

func (s *PaymentService) ListPayments(page, limit int, status string) ([]model.Payment, int64, error) {
	return s.PaymentRepo.List(page, limit, status)
}

// Refund marks a completed payment refunded and cancels the subscription.
func (s *PaymentService) Refund(paymentID string) (*model.Payment, error) {
	payment, err := s.PaymentRepo.FindByID(paymentID)
	if err != nil {
		return nil, util.ErrPaymentNotFound
	}
	if payment.Status != model.PaymentCompleted {
		return nil, util.ErrPaymentSettled
	}

	payment.Status = model.PaymentRefunded
	if err := s.PaymentRepo.Update(payment); err != nil {
		return nil, err
	}

	if sub, err := s.SubRepo.FindByID(payment.SubscriptionID); err == nil {
		sub.Status = model.SubscriptionCanceled
		_ = s.SubRepo.Update(sub)
	}
	return payment, nil
}

// ExpireStaleSubscriptions is run from the background sweep.
func (s *PaymentService) ExpireStaleSubscriptions() error {
	_, err := s.SubRepo.ExpireStale()
	return err
}
