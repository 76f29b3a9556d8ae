package config

// SnapshotsConfig controls the on-disk season cache.
type SnapshotsConfig struct {
	Dir        string
	Backups    bool // keep a .bak copy before overwriting a season file
	AdminToken string
}

func loadSnapshots(file fileSnapshots) SnapshotsConfig {
	return SnapshotsConfig{
		Dir:        envOrDefault(envSnapshotDir, fileOrDefault(file.Dir, defaultSnapshotDir)),
		Backups:    boolEnvOrDefault(envSnapshotBackups, boolFileOrDefault(file.Backups, true)),
		AdminToken: envOrDefault(envAdminToken, file.AdminToken),
	}
}
