// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model SignupRequest
type SignupRequest struct {
	// User's email address
	// required: true
	Email string `json:"email" example:"rider@example.com"`
	// User's password
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
	// Optional full name
	FullName *string `json:"full_name" example:"Jane Doe"`
	// Optional stable or yard name
	StableName *string `json:"stable_name" example:"Willow Creek Stables"`
	// Preferred discipline (DRESSAGE or JUMPING)
	Discipline *string `json:"discipline" example:"DRESSAGE"`
}

// swagger:model AuthResponse
type AuthResponse struct {
	// Authentication session token
	// Should be used in the Authorization header as a Bearer token.
	SessionToken string `json:"session_token" example:"sample_session_token"`
	// Message indicating successful operation
	Message string `json:"message" example:"Operation successful"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// User's email address
	Email string `json:"email" example:"rider@example.com"`
	// User's password
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model GetUserResponse
type GetUserResponse struct {
	// Unique identifier for the user
	AccountID string `json:"account_id" example:"acct_1234567890"`
	// Email address associated with the user's account
	Email string `json:"email" example:"rider@example.com"`
	// Full name of the user
	FullName *string `json:"full_name" example:"Jane Doe"`
	// Stable or yard name
	StableName *string `json:"stable_name" example:"Willow Creek Stables"`
	// Preferred discipline
	Discipline *string `json:"discipline" example:"DRESSAGE"`
	// Name of the user's current plan
	Plan string `json:"plan" example:"FREE"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"User retrieved successfully"`
}

// swagger:model DocumentLimitResponse
type DocumentLimitResponse struct {
	// Whether the user may upload another document
	CanUploadDocument bool `json:"canUploadDocument"`
	// Documents counted within the plan's scope
	CurrentDocuments int `json:"currentDocuments"`
	// Plan limit; the string "unlimited" for unlimited plans
	MaxDocuments any `json:"maxDocuments"`
	// Name of the plan the decision was made against
	PlanName string `json:"planName"`
	// Remaining quota; the string "unlimited" for unlimited plans
	RemainingDocuments any `json:"remainingDocuments"`
	// Limit scope: "lifetime" or "monthly"
	LimitType string `json:"limitType"`
	// Start of the counted period (RFC3339), or "lifetime"
	LimitPeriod string `json:"limitPeriod"`
}

// swagger:model HorseLimitResponse
type HorseLimitResponse struct {
	// Whether the user may register another horse
	CanAddHorse bool `json:"canAddHorse"`
	// Horses currently registered
	CurrentHorses int `json:"currentHorses"`
	// Plan limit; the string "unlimited" for unlimited plans
	MaxHorses any `json:"maxHorses"`
	// Name of the plan the decision was made against
	PlanName string `json:"planName"`
	// Remaining slots; the string "unlimited" for unlimited plans
	RemainingSlots any `json:"remainingSlots"`
}

// swagger:model PlanDetails
type PlanDetails struct {
	// Plan ID
	ID uint `json:"id" example:"1"`
	// Plan name
	Name string `json:"name" example:"FREE"`
	// Monthly price in cents
	PriceMonthly uint `json:"price_monthly" example:"0"`
	// Annual price in cents
	PriceAnnual uint `json:"price_annual" example:"0"`
	// Currency for the plan prices
	Currency string `json:"currency" example:"EUR"`
	// Document limit; the string "unlimited" for unlimited plans
	MaxDocuments any `json:"max_documents"`
	// Scope of the document limit: "lifetime" or "monthly"
	DocumentLimitScope string `json:"document_limit_scope" example:"monthly"`
	// Horse limit; the string "unlimited" for unlimited plans
	MaxHorses any `json:"max_horses"`
	// Monthly analysis limit; the string "unlimited" for unlimited plans
	MaxAnalysesPerMonth any `json:"max_analyses_per_month"`
}

// swagger:model CouponDetails
type CouponDetails struct {
	// Coupon code
	Code string `json:"code" example:"SAVE20"`
	// Discount percentage applied by the coupon
	DiscountPercent uint `json:"discount_percent" example:"20"`
}

// swagger:model SubscriptionDetails
type SubscriptionDetails struct {
	// Public subscription identifier
	SubscriptionID string `json:"subscription_id" example:"sub_a1b2c3d4"`
	// Whether this subscription is a trial
	IsTrial bool `json:"is_trial" example:"false"`
	// Date when the subscription started
	StartedAt string `json:"started_at" example:"2025-01-01T00:00:00Z"`
	// Date when the subscription ends (null for open-ended subscriptions)
	EndsAt *string `json:"ends_at" example:"2026-01-01T00:00:00Z"`
	// Plan details
	Plan PlanDetails `json:"plan"`
	// Coupon applied at purchase, if any
	Coupon *CouponDetails `json:"coupon,omitempty"`
}

// swagger:model SubscriptionStatusResponse
type SubscriptionStatusResponse struct {
	// Whether the user has an active subscription
	Subscribed bool `json:"subscribed"`
	// Active subscription details, null when not subscribed
	Subscription *SubscriptionDetails `json:"subscription"`
}

// swagger:model ValidateCouponRequest
type ValidateCouponRequest struct {
	// Coupon code to validate
	// required: true
	CouponCode string `json:"couponCode" example:"SAVE20"`
}

// swagger:model ValidateCouponResponse
type ValidateCouponResponse struct {
	// Whether the coupon is valid
	Valid bool `json:"valid"`
	// Discount percentage, present when valid
	DiscountPercent *uint `json:"discount_percent,omitempty"`
	// Normalized coupon code, present when valid
	Code *string `json:"code,omitempty"`
	// Expiry timestamp, present when valid and the coupon expires
	ExpiresAt *string `json:"expires_at,omitempty"`
	// Reason the coupon was rejected, present when invalid
	Error *string `json:"error,omitempty"`
}

// swagger:model ProfileUpdateData
type ProfileUpdateData struct {
	// New full name
	FullName *string `json:"full_name"`
	// New stable or yard name
	StableName *string `json:"stable_name"`
	// New preferred discipline
	Discipline *string `json:"discipline"`
}

// swagger:model AdminProfileUpdateRequest
type AdminProfileUpdateRequest struct {
	// ID of the user whose profile is updated
	// required: true
	UserID uint `json:"userId" example:"42"`
	// Fields to update
	UpdateData ProfileUpdateData `json:"updateData"`
}

// swagger:model AdminProfileUpdateResponse
type AdminProfileUpdateResponse struct {
	// Whether the update was applied
	Success bool `json:"success"`
	// Human-readable result
	Message string `json:"message"`
}

// swagger:model GrantRoleRequest
type GrantRoleRequest struct {
	// ID of the user receiving the role
	// required: true
	UserID uint `json:"userId" example:"42"`
	// Role to grant (currently only ADMIN)
	Role string `json:"role" example:"ADMIN"`
}

// swagger:model CreateHorseRequest
type CreateHorseRequest struct {
	// Horse's name
	// required: true
	Name string `json:"name" example:"Donnerhall"`
	// Breed
	Breed *string `json:"breed" example:"Hanoverian"`
	// Year of birth
	YearBorn *int `json:"year_born" example:"2016"`
}

// swagger:model CreateHorseResponse
type CreateHorseResponse struct {
	// ID of the created horse
	HorseID uint `json:"horse_id"`
	// Name of the created horse
	Name string `json:"name"`
	// Remaining slots after creation; "unlimited" for unlimited plans
	RemainingSlots any `json:"remainingSlots"`
	// Message indicating successful creation
	Message string `json:"message" example:"Horse registered successfully"`
}

// swagger:model CreateDocumentRequest
type CreateDocumentRequest struct {
	// Document title
	// required: true
	Title string `json:"title" example:"Flatwork session 2025-03-17"`
	// Kind of record: DOCUMENT or VIDEO
	Kind *string `json:"kind" example:"VIDEO"`
	// Horse the record belongs to
	HorseID *uint `json:"horse_id" example:"7"`
}

// swagger:model CreateDocumentResponse
type CreateDocumentResponse struct {
	// ID of the created document
	DocumentID uint `json:"document_id"`
	// Title of the created document
	Title string `json:"title"`
	// Remaining quota after creation; "unlimited" for unlimited plans
	RemainingDocuments any `json:"remainingDocuments"`
	// Message indicating successful creation
	Message string `json:"message" example:"Document created successfully"`
}

// swagger:model SubmitAnalysisRequest
type SubmitAnalysisRequest struct {
	// Discipline to analyze: DRESSAGE or JUMPING
	// required: true
	Discipline string `json:"discipline" example:"DRESSAGE"`
	// Horse the analysis concerns
	HorseID *uint `json:"horse_id" example:"7"`
	// Document or video the analysis is based on
	DocumentID *uint `json:"document_id" example:"12"`
	// Free-form rider notes passed to the analysis
	Notes *string `json:"notes" example:"Struggling with flying changes"`
}

// swagger:model SubmitAnalysisResponse
type SubmitAnalysisResponse struct {
	// Public analysis identifier
	AID string `json:"aid" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Current status of the analysis
	Status string `json:"status" example:"QUEUED"`
	// Message indicating the job was accepted
	Message string `json:"message" example:"Analysis queued"`
}

// swagger:model AnalysisLimitResponse
type AnalysisLimitResponse struct {
	// Whether the user may run another analysis this month
	CanRunAnalysis bool `json:"canRunAnalysis"`
	// Analyses run this month
	CurrentAnalyses int `json:"currentAnalyses"`
	// Plan limit; the string "unlimited" for unlimited plans
	MaxAnalyses any `json:"maxAnalyses"`
	// Name of the plan the decision was made against
	PlanName string `json:"planName"`
	// Remaining quota; the string "unlimited" for unlimited plans
	RemainingAnalyses any `json:"remainingAnalyses"`
}

// swagger:model PlanPricing
type PlanPricing struct {
	// Monthly price in cents
	Monthly uint `json:"monthly" example:"1499"`
	// Annual price in cents
	Annual uint `json:"annual" example:"14990"`
	// Currency code
	Currency string `json:"currency" example:"EUR"`
}

// swagger:model PlanOption
type PlanOption struct {
	// Plan ID
	ID uint `json:"id" example:"1"`
	// Plan name
	Name string `json:"name" example:"PLUS"`
	// Plan pricing information
	Pricing PlanPricing `json:"pricing"`
	// Whether this is the recommended plan
	Recommended bool `json:"recommended" example:"true"`
	// List of plan features
	Features []string `json:"features"`
}

// swagger:model GetPlansResponse
type GetPlansResponse struct {
	// Operation success message
	Message string `json:"message" example:"Plans retrieved successfully"`
	// List of available plans
	Plans []PlanOption `json:"plans"`
}

// swagger:model CreateCheckoutRequest
type CreateCheckoutRequest struct {
	// Plan to purchase
	// required: true
	PlanID uint `json:"plan_id" example:"2"`
	// Bill annually instead of monthly
	Annual bool `json:"annual" example:"false"`
	// Optional coupon code applied to the charge
	CouponCode *string `json:"couponCode" example:"SAVE20"`
}

// swagger:model CreateCheckoutResponse
type CreateCheckoutResponse struct {
	// Stripe Checkout URL to redirect the user to
	URL string `json:"url,omitempty"`
	// Reason the checkout was refused (e.g. rejected coupon)
	Error *string `json:"error,omitempty"`
}
