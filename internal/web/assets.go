package web

import "github.com/dom/power-league-website/internal/domain"

// Paths below are served from PUBLIC_DIR under /assets.
const (
	AAULogo           = "/assets/aau_logo.png"
	AAUVolleyballLogo = "/assets/aauvball_logo.png"
)

var SliderImages = []string{
	"https://rgfyvxwdfpkoj7p1.public.blob.vercel-storage.com/frontpage-slider/483980978.jpg",
	"https://rgfyvxwdfpkoj7p1.public.blob.vercel-storage.com/frontpage-slider/DSC_8990.JPG",
	"https://rgfyvxwdfpkoj7p1.public.blob.vercel-storage.com/frontpage-slider/IMG_7941.JPG",
	"https://rgfyvxwdfpkoj7p1.public.blob.vercel-storage.com/frontpage-slider/IMG_7990.JPG",
}

var paymentIcons = map[domain.PaymentMethod]string{
	domain.PaymentGooglePay:  "/assets/google-pay-mark_800.svg",
	domain.PaymentApplePay:   "/assets/Apple_Pay_Mark_RGB_041619.svg",
	domain.PaymentCash:       "/assets/icons/banknotes.svg",
	domain.PaymentCreditCard: "/assets/icons/credit-card.svg",
	domain.PaymentVenmo:      "/assets/icons/venmo.svg",
}

func PaymentIcon(m domain.PaymentMethod) string {
	return paymentIcons[m]
}
