// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Session / profiles
	KeySessionRequired   = "session.required"
	KeySessionSwitched   = "session.switched"
	KeyAdminAccessDenied = "session.admin_access_denied"
	KeyProfileNotFound   = "profile.not_found"

	// Products
	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"

	// Catalog offers
	KeyOfferBuyNow       = "offer.buy_now"
	KeyOfferGiftFirstOne = "offer.gift_first_one"
	KeyOfferGiftToStock  = "offer.gift_to_stock"
	KeyOfferComingSoon   = "offer.coming_soon"

	// Cart
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartItemNotFound = "cart.item_not_found"
	KeyCartInvalidType  = "cart.invalid_order_type"

	// Checkout
	KeyCheckoutEmptyCart   = "checkout.empty_cart"
	KeyCheckoutTransferred = "checkout.transferred"
	KeyCheckoutConfirmed   = "checkout.confirmed"
	KeyCheckoutWrongStage  = "checkout.wrong_stage"

	// Messages
	KeyMessageSent     = "message.sent"
	KeyMessageDeleted  = "message.deleted"
	KeyMessageNotFound = "message.not_found"

	// Settings
	KeySettingsUpdated = "settings.updated"

	// AI generation
	KeyAIDescriptionFallback = "ai.description_fallback"
	KeyAIImageFailed         = "ai.image_failed"
)
