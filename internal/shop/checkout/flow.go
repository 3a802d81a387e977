package checkout

import (
	"slices"
	"sync"
	"time"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// DefaultSettlementDelay is how long simulated payment settlement takes.
const DefaultSettlementDelay = 2 * time.Second

// CartStore is the part of the cart a checkout reads and clears.
type CartStore interface {
	Snapshot() model.CartSnapshot
	ClearCart()
}

// State is a point-in-time view of a Flow.
type State struct {
	Step         Step            `json:"step"`
	IsProcessing bool            `json:"is_processing"`
	IsSuccess    bool            `json:"is_success"`
	Shipping     ShippingDetails `json:"shipping"`
}

// Receipt records a confirmed order.
type Receipt struct {
	OrderID     string           `json:"order_id"`
	Charged     decimal.Decimal  `json:"charged"`
	Lines       []model.CartLine `json:"lines"`
	Shipping    ShippingDetails  `json:"shipping"`
	ConfirmedAt time.Time        `json:"confirmed_at"`
}

type Option func(*Flow)

func WithClock(c clockwork.Clock) Option {
	return func(f *Flow) { f.clock = c }
}

// WithSettlementDelay overrides DefaultSettlementDelay. Non-positive values are ignored.
func WithSettlementDelay(d time.Duration) Option {
	return func(f *Flow) {
		if d > 0 {
			f.delay = d
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(f *Flow) { f.logger = l }
}

// OnConfirmed registers fn to run once the order settles, after the cart
// has been cleared.
func OnConfirmed(fn func(Receipt)) Option {
	return func(f *Flow) { f.onConfirmed = append(f.onConfirmed, fn) }
}

// Flow walks one checkout attempt from shipping to confirmation.
//
// A Flow is single-use: once confirmed it stays confirmed, and Close
// discards it. A settlement scheduled by SubmitPayment belongs to the Flow
// and is cancelled by Close, so it can never clear a cart for a checkout
// nobody is looking at.
type Flow struct {
	cart        CartStore
	clock       clockwork.Clock
	delay       time.Duration
	logger      zerolog.Logger
	onConfirmed []func(Receipt)

	mu         sync.Mutex
	step       Step
	processing bool
	success    bool
	closed     bool
	shipping   ShippingDetails
	pending    clockwork.Timer
	receipt    *Receipt
}

func New(cart CartStore, opts ...Option) *Flow {
	f := &Flow{
		cart:   cart,
		clock:  clockwork.NewRealClock(),
		delay:  DefaultSettlementDelay,
		logger: log.Logger,
		step:   StepShipping,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Step:         f.step,
		IsProcessing: f.processing,
		IsSuccess:    f.success,
		Shipping:     f.shipping,
	}
}

// Summary prices the cart as it is right now.
func (f *Flow) Summary() Summary {
	return Summarize(f.cart.Snapshot())
}

// PayAmount is the amount the payment action would charge right now.
func (f *Flow) PayAmount() decimal.Decimal {
	return ChargeAmount(f.cart.Snapshot().TotalPrice)
}

// ProceedToPayment records the shipping details and moves Shipping -> Payment.
func (f *Flow) ProceedToPayment(details ShippingDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.step != StepShipping {
		return errx.InvalidTransition(f.step.String(), StepPayment.String())
	}
	if missing := details.Missing(); len(missing) > 0 {
		return errx.IncompleteShipping(missing)
	}
	f.shipping = details
	f.step = StepPayment
	f.logger.Info().Str("step", f.step.String()).Msg("checkout advanced to payment")
	return nil
}

// Back moves Payment -> Shipping. It reports false, changing nothing,
// unless the flow is at Payment and not processing.
func (f *Flow) Back() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.step != StepPayment || f.processing {
		return false
	}
	f.step = StepShipping
	f.logger.Info().Str("step", f.step.String()).Msg("checkout returned to shipping")
	return true
}

// SubmitPayment starts settlement for subtotal + ShippingFee. It reports
// false and does nothing when the action is disabled: outside Payment,
// while a settlement is pending, after confirmation, after Close, or with
// an empty cart.
func (f *Flow) SubmitPayment() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || f.step != StepPayment || f.processing || f.success {
		f.logger.Debug().
			Str("step", f.step.String()).
			Bool("processing", f.processing).
			Bool("closed", f.closed).
			Msg("payment submission ignored")
		return false
	}
	cart := f.cart.Snapshot()
	if len(cart.Lines) == 0 {
		f.logger.Debug().Msg("payment submission ignored: cart is empty")
		return false
	}

	charged := ChargeAmount(cart.TotalPrice)
	paid := cart.Lines
	f.processing = true
	f.pending = f.clock.AfterFunc(f.delay, func() { f.settle(charged, paid) })
	f.logger.Info().
		Str("amount", charged.StringFixed(2)).
		Dur("delay", f.delay).
		Msg("payment processing")
	return true
}

// Receipt returns the confirmation once the order has settled.
func (f *Flow) Receipt() (Receipt, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.receipt == nil {
		return Receipt{}, false
	}
	r := *f.receipt
	r.Lines = append([]model.CartLine(nil), f.receipt.Lines...)
	return r, true
}

// Close discards the flow and cancels a pending settlement. It is safe to
// call more than once.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	if f.pending != nil {
		f.pending.Stop()
		f.pending = nil
		f.logger.Info().Msg("checkout abandoned during settlement")
	}
}

func (f *Flow) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// settle confirms the order for the lines that were priced at submission.
// The cart is cleared after the Flow is unlocked; the processing flag
// guarantees it happens once.
func (f *Flow) settle(charged decimal.Decimal, paid []model.CartLine) {
	f.mu.Lock()
	if f.closed || !f.processing {
		f.mu.Unlock()
		return
	}
	f.processing = false
	f.success = true
	f.step = StepConfirmed
	f.pending = nil
	receipt := Receipt{
		OrderID:     uuid.NewString(),
		Charged:     charged,
		Lines:       paid,
		Shipping:    f.shipping,
		ConfirmedAt: f.clock.Now(),
	}
	f.receipt = &receipt
	hooks := slices.Clone(f.onConfirmed)
	f.mu.Unlock()

	f.cart.ClearCart()
	f.logger.Info().
		Str("order_id", receipt.OrderID).
		Str("charged", charged.StringFixed(2)).
		Msg("order confirmed")

	for _, fn := range hooks {
		fn(receipt)
	}
}
