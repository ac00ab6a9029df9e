package constants

// Keys of the single-valued entries in the kv table
const (
	KeyQuitDate            = "quit_date"
	KeyUserProfile         = "user_profile"
	KeyOnboardingCompleted = "onboarding_completed"
)

const (
	DefaultCurrency          = "₺"
	DefaultCigarettesPerPack = 20
)

// Currencies offered when entering the pack price
var Currencies = []string{"₺", "$", "€", "£", "¥", "₽", "₴", "₸"}
