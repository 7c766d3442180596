package services

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"fintrack/internal/logger"
	"fintrack/internal/models"
)

const redacted = "[REDACTED]"

// sensitiveAuditKeys never reach the audit table in clear text.
var sensitiveAuditKeys = []string{"password", "token", "secret"}

// auditService writes audit entries for mutating requests. Entries carry no
// foreign key to users so they outlive the account they describe.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Failures are logged and swallowed.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	log := logger.Named("audit")

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}

	if len(changes) > 0 {
		data, err := json.Marshal(redactChanges(changes))
		if err != nil {
			log.Warnw("unencodable audit changes", "error", err, "action", action)
			data = []byte("{}")
		}
		entry.Changes = string(data)
	}

	if err := s.db.Create(entry).Error; err != nil {
		log.Errorw("failed to write audit entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource", resourceType+"/"+resourceID,
		)
	}
}

func redactChanges(changes map[string]any) map[string]any {
	out := make(map[string]any, len(changes))
	for k, v := range changes {
		if isSensitiveKey(k) {
			v = redacted
		}
		out[k] = v
	}
	return out
}

func isSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	for _, s := range sensitiveAuditKeys {
		if strings.Contains(key, s) {
			return true
		}
	}
	return false
}
