package constants

import "time"

const (
	ServiceName         = "folder-cleanup"
	ConfigPath          = "/etc/folder-cleanup/.env"
	DefaultLogPath      = "/var/log/folder-cleanup"
	DefaultSettingsPath = "/etc/folder-cleanup/settings.json"
	DefaultDatabasePath = "/var/lib/folder-cleanup/reports.db"
	APIVersion          = "v1"
	ShutdownTimeout     = 5 * time.Second

	// DefaultInterval is the delay between cleanup cycles when the
	// settings file does not specify one.
	DefaultInterval = 3600 * time.Second

	// SleepTick bounds how long a cancellation request can go
	// unobserved while the scheduler sleeps between cycles.
	SleepTick = time.Second
)
