package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrSessionNotFound     = errors.New("assessment session not found")
	ErrSessionCompleted    = errors.New("assessment session already completed")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrCounselorNotFound   = errors.New("counselor not found")
	ErrCounselorUnverified = errors.New("counselor not verified")
	ErrSlotTaken           = errors.New("time slot already booked")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentSettled      = errors.New("payment already settled")
	ErrNoActiveSub         = errors.New("no active subscription")
)
