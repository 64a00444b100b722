package db_models

type CouponStatus string

const (
	CouponActive  CouponStatus = "active"
	CouponExpired CouponStatus = "expired"
)

type Coupon struct {
	BaseModel
	Code     string `gorm:"uniqueIndex"`
	Discount float64
	Type     string `gorm:"default:percentage"` // "percentage" | "fixed"
	Status   CouponStatus
	// ExpiresAt keeps the admin-entered date string as-is.
	ExpiresAt string
}
