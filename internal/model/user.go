package model

// Role is the set of app roles a user may hold.
type Role string

const (
	RoleDispatch Role = "Dispatch"
	RoleLead     Role = "Lead"
	RoleMgmt     Role = "Mgmt"
)

// User is a dispatch-backend operator. PINs are stored in plaintext — spec
// §9 documents this as a deliberate, existing behavior (not a gap to be
// silently "fixed"): a re-implementation that hashes PINs would be a
// behavior change requiring caller migration, which is out of scope here.
type User struct {
	Username string `gorm:"type:varchar(64);primaryKey" json:"username"`
	Pin      string `gorm:"type:varchar(32);not null"    json:"-"`
	Role     Role   `gorm:"type:varchar(16);not null"    json:"role"`

	BaseModel
}

// TableName pins the GORM table name.
func (User) TableName() string { return "users" }
