// internal/checkout/checkout.go
package checkout

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sproutlabs/sprout-backend/internal/cart"
)

// Stage is the handshake's position. The only legal path is
// cart -> transferring -> confirm -> success, with confirm -> cart as the
// single return edge (the user aborting to adjust the cart).
type Stage string

const (
	StageCart         Stage = "cart"
	StageTransferring Stage = "transferring"
	StageConfirm      Stage = "confirm"
	StageSuccess      Stage = "success"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrWrongStage   = errors.New("operation not valid in current checkout stage")
	ErrNotConfirmed = errors.New("checkout has not reached the confirm stage")
)

// StockWriter applies confirmed inventory mutations back through the data
// sync layer. ConfirmReceived adds exactly one unit and marks the product
// received.
type StockWriter interface {
	ConfirmReceived(productID uuid.UUID)
}

// Handshake bridges the local cart to the external marketplace's checkout.
// The handoff is fire-and-forget: nothing here can observe whether the
// external purchase actually happened, so Confirm is a trust-based user
// assertion.
type Handshake struct {
	mu sync.Mutex

	stage         Stage
	cart          *cart.Cart
	writer        StockWriter
	endpoint      string
	associateTag  string
	transferDelay time.Duration
	url           string
}

type Options struct {
	Endpoint     string
	AssociateTag string
	// TransferDelay is the batching affordance shown to the user before the
	// confirm prompt appears. It exists for UX, not correctness; a
	// non-positive value advances synchronously.
	TransferDelay time.Duration
}

func New(c *cart.Cart, writer StockWriter, opts Options) *Handshake {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Handshake{
		stage:         StageCart,
		cart:          c,
		writer:        writer,
		endpoint:      endpoint,
		associateTag:  opts.AssociateTag,
		transferDelay: opts.TransferDelay,
	}
}

func (h *Handshake) Stage() Stage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stage
}

// URL returns the batched marketplace URL built by Begin, empty before then.
func (h *Handshake) URL() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.url
}

// Begin moves cart -> transferring, builds the batched marketplace URL for
// the client to open, and schedules the unconditional advance to confirm.
// It does not wait on the external page in any way.
func (h *Handshake) Begin() (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stage != StageCart {
		return "", ErrWrongStage
	}
	if h.cart.Len() == 0 {
		return "", ErrEmptyCart
	}

	h.url = BuildCartURL(h.endpoint, h.cart.Items(), h.associateTag)
	h.stage = StageTransferring

	if h.transferDelay <= 0 {
		h.stage = StageConfirm
	} else {
		time.AfterFunc(h.transferDelay, h.finishTransfer)
	}

	return h.url, nil
}

func (h *Handshake) finishTransfer() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stage == StageTransferring {
		h.stage = StageConfirm
	}
}

// Back returns confirm -> cart with the cart contents intact. There is no
// cancellation from transferring; it auto-advances.
func (h *Handshake) Back() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stage != StageConfirm {
		return ErrWrongStage
	}
	h.stage = StageCart
	h.url = ""
	return nil
}

// Confirm accepts the user's assertion that the external checkout was
// completed. Per confirmed line the product gains exactly one unit, not the
// line's quantity, and the cart is cleared unconditionally.
func (h *Handshake) Confirm() ([]uuid.UUID, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stage != StageConfirm {
		return nil, ErrNotConfirmed
	}

	items := h.cart.Items()
	confirmed := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		h.writer.ConfirmReceived(item.Product.ID)
		confirmed = append(confirmed, item.ID)
	}

	logrus.WithField("items", len(confirmed)).Info("Checkout confirmed, inventory updated")

	h.cart.Clear()
	h.stage = StageSuccess
	return confirmed, nil
}
