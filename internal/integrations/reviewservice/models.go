package reviewservice

// ReviewEligibility уведомление о том, что по бронированию можно оставить отзыв
// Отправляется в ReviewService после завершения консультации
type ReviewEligibility struct {
	BookingID    int64  `json:"bookingId"`
	Company      string `json:"company"`
	ContactEmail string `json:"contactEmail"`
	CanReview    bool   `json:"canReview"`
}
