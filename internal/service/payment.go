package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sozhane/backend/config"
	"github.com/sozhane/backend/internal/model"
	"github.com/sozhane/backend/internal/pkg/stripeapi"
	"github.com/sozhane/backend/internal/repository"
	"k8s.io/klog/v2"
)

var ErrUnknownPlan = errors.New("unknown plan")

// Plan is a purchasable entitlement bundle. Amounts are in kuruş.
type Plan struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AmountTRY     int64  `json:"amount_try"`
	Recurring     bool   `json:"recurring"`
	ContractCount int    `json:"contract_count"` // 0 means unlimited
}

var Plans = map[string]Plan{
	model.PlanStarter: {
		ID:            model.PlanStarter,
		Name:          "Başlangıç",
		AmountTRY:     19900,
		Recurring:     false,
		ContractCount: 5,
	},
	model.PlanPro: {
		ID:        model.PlanPro,
		Name:      "Profesyonel",
		AmountTRY: 4900,
		Recurring: true,
	},
}

type PaymentService struct {
	cfg         *config.Config
	stripe      *stripeapi.Client
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(cfg *config.Config, stripe *stripeapi.Client, userRepo repository.UserRepository, paymentRepo repository.PaymentRepository) *PaymentService {
	return &PaymentService{cfg: cfg, stripe: stripe, userRepo: userRepo, paymentRepo: paymentRepo}
}

// CheckoutResult either carries a hosted checkout URL or reports that the
// plan was activated directly (local development without Stripe keys).
type CheckoutResult struct {
	URL       string `json:"url,omitempty"`
	Activated bool   `json:"activated,omitempty"`
}

// Checkout starts a purchase for the given plan. Without Stripe credentials
// it activates the plan immediately, but only outside release mode.
func (s *PaymentService) Checkout(ctx context.Context, user *model.User, planID string) (*CheckoutResult, error) {
	plan, ok := Plans[planID]
	if !ok {
		return nil, ErrUnknownPlan
	}

	if !s.stripe.Configured() {
		if s.cfg.Server.Mode == "release" {
			return nil, fmt.Errorf("stripe is not configured")
		}
		klog.Warningf("stripe not configured, activating plan %s for %s directly", planID, user.ID)
		if err := s.activate(user.ID, plan); err != nil {
			return nil, err
		}
		return &CheckoutResult{Activated: true}, nil
	}

	customerID := user.StripeCustomerID
	if customerID == "" {
		customer, err := s.stripe.FindOrCreateCustomer(ctx, user.Email, user.Name)
		if err != nil {
			return nil, err
		}
		customerID = customer.ID
		if err := s.userRepo.SetStripeCustomerID(user.ID, customerID); err != nil {
			return nil, err
		}
	}

	priceID := s.cfg.Stripe.PriceOneTimeTRY
	if plan.Recurring {
		priceID = s.cfg.Stripe.PriceSubMonthlyTRY
	}
	session, err := s.stripe.CreateCheckoutSession(ctx, stripeapi.CheckoutParams{
		CustomerID:  customerID,
		PriceID:     priceID,
		ProductName: "Sözhane " + plan.Name,
		AmountTRY:   plan.AmountTRY,
		Recurring:   plan.Recurring,
		SuccessURL:  s.cfg.Stripe.AppURL + "/dashboard?payment=success",
		CancelURL:   s.cfg.Stripe.AppURL + "/pricing?payment=cancelled",
		UserID:      user.ID,
		PlanID:      plan.ID,
	})
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		UserID:          user.ID,
		StripePaymentID: session.ID,
		Plan:            plan.ID,
		AmountTRY:       int(plan.AmountTRY),
		Status:          model.PaymentPending,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return &CheckoutResult{URL: session.URL}, nil
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// HandleWebhook processes a verified Stripe event payload. Only completed
// checkout sessions change state; everything else is acknowledged and
// ignored.
func (s *PaymentService) HandleWebhook(payload []byte, signature string) error {
	if err := s.stripe.VerifyWebhookSignature(payload, signature); err != nil {
		return err
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("malformed event payload: %w", err)
	}
	if event.Type != "checkout.session.completed" {
		klog.V(6).Infof("ignoring stripe event %s", event.Type)
		return nil
	}

	sessionID := event.Data.Object.ID
	userID := event.Data.Object.Metadata["user_id"]
	planID := event.Data.Object.Metadata["plan_id"]
	plan, ok := Plans[planID]
	if !ok {
		return fmt.Errorf("%w: %q in session %s", ErrUnknownPlan, planID, sessionID)
	}

	if payment, err := s.paymentRepo.GetByStripeID(sessionID); err == nil {
		if payment.Status == model.PaymentCompleted {
			// duplicate delivery
			return nil
		}
		if err := s.paymentRepo.MarkCompleted(payment.ID, sessionID); err != nil {
			return err
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	klog.Infof("payment completed for user %s, plan %s", userID, planID)
	return s.activate(userID, plan)
}

func (s *PaymentService) History(userID string) ([]model.Payment, error) {
	return s.paymentRepo.GetByUser(userID)
}

func (s *PaymentService) activate(userID string, plan Plan) error {
	return s.userRepo.ActivatePlan(userID, plan.ID, plan.ContractCount)
}
