package constants

// --- СТАТУСЫ СЕРТИФИКАТОВ ---
const (
	CertStatusValid        = "valid"
	CertStatusExpiringSoon = "expiring_soon"
	CertStatusExpired      = "expired"
)

// CertExpiryWarningDays — горизонт предупреждения по умолчанию (дней).
const CertExpiryWarningDays = 30
