package storage

// Persisted record keys. Each key carries a version suffix so an
// incompatible shape change can ship under a new key and the old value
// simply falls back to its default instead of crashing a reader.
const (
	KeyBigThree      = "fm_bigthree_v1"
	KeyPetTasks      = "fm_pettasks_v1"
	KeyTrophyStats   = "fm_trophies_v1"
	KeyTrophyLog     = "fm_trophy_log_v1"
	KeyTodayTrophies = "fm_today_trophies_v1"
	KeyCurrency      = "fm_currency_v1"
	KeyDailyEarned   = "fm_daily_earned_v1"
	KeyEarningLog    = "fm_earning_log_v1"
	KeyWins          = "fm_wins_v1"
	KeySettings      = "fm_celebration_settings_v1"
	KeyPet           = "fm_pet_v1"
)
