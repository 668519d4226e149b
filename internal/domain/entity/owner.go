package entity

// Owner holds per-chat settings. A row exists only once the owner customizes
// something; absence means all defaults apply.
type Owner struct {
	ID string `gorm:"column:owner_id;primaryKey"`
	// Timezone is the IANA zone chosen via /timezone; empty means the
	// configured global default.
	Timezone string `gorm:"column:timezone"`
}

// TableName specifies the table name for the Owner entity.
func (Owner) TableName() string {
	return "owner_settings"
}
