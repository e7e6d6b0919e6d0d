package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("member not found")
	ErrNotActive        = errors.New("member is not active")
	ErrHasActiveLoan    = errors.New("member still has an active loan")
	ErrAlreadyCashedOut = errors.New("member already cashed out")
)

type Role string

const (
	RoleDriver        Role = "driver"
	RoleAssistant     Role = "assistant"
	RoleHousekeeper   Role = "housekeeper"
	RoleGroundsKeeper Role = "groundsKeeper"
	RoleSecurityGuard Role = "securityGuard"
	RolePartTime      Role = "partTime"
)

// Valid reports whether r is one of the known roles. Roles are validated
// once at the HTTP boundary; domain code trusts the typed value.
func (r Role) Valid() bool {
	switch r {
	case RoleDriver, RoleAssistant, RoleHousekeeper, RoleGroundsKeeper, RoleSecurityGuard, RolePartTime:
		return true
	}
	return false
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

type Member struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	MemberID           string         `gorm:"size:32;uniqueIndex:ux_members_member_id_active" json:"member_id"`
	Name               string         `gorm:"size:128" json:"name"`
	Role               Role           `gorm:"type:enum('driver','assistant','housekeeper','groundsKeeper','securityGuard','partTime')" json:"role"`
	Status             Status         `gorm:"type:enum('active','suspended','inactive');default:'active'" json:"status"`
	TotalContributions float64        `gorm:"type:decimal(18,2)" json:"total_contributions"`
	JoinDate           *time.Time     `gorm:"type:date" json:"join_date"`
	CashOutAmount      float64        `gorm:"type:decimal(18,2)" json:"cash_out_amount"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }
