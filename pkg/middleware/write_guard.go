package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Cascadia376/cascadia-data-pipeline/internal/config"
	"github.com/Cascadia376/cascadia-data-pipeline/pkg/apiErrors"
)

// WriteGuard blocks routes that write to the database unless writes are
// enabled and, in production, a backup has been verified.
func WriteGuard(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Safety.AllowWrites {
				logrus.WithField("path", r.URL.Path).Warn("write refused: writes disabled")
				apiErrors.WriteError(w, apiErrors.ErrWritesDisabled, "database writes are disabled; set ALLOW_WRITES=true", nil)
				return
			}

			if cfg.App.Env == config.EnvProduction && !cfg.Safety.BackupVerified {
				logrus.WithField("path", r.URL.Path).Warn("write refused: backup not verified")
				apiErrors.WriteError(w, apiErrors.ErrBackupUnverified, "verify a backup and set BACKUP_VERIFIED=true before writing to production", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
