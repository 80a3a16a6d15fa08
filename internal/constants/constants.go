package constants

const (
	AppName           = "tally"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/tally/tally.db"

	// KeyringSessionKey identifies the persisted current-user entry in the
	// OS keyring. The service name is AppName.
	KeyringSessionKey = "current-user"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "tally-"
	BackupFileSuffix = ".db"

	// Completion-rate display buckets. Rates strictly above BucketHighMin
	// are "high", rates at or above BucketMediumMin are "medium",
	// everything below is "low".
	BucketHighMin   = 80
	BucketMediumMin = 50
)
