package models

// SkillLevel is a declared proficiency (for taught skills) or desire
// intensity (for wanted skills). Valid persisted values are 1..3; level 0 is
// never stored, it deletes the relation instead.
type SkillLevel int

const (
	SkillLevelLow  SkillLevel = 1
	SkillLevelMid  SkillLevel = 2
	SkillLevelHigh SkillLevel = 3
)

// Valid reports whether the level may be persisted.
func (l SkillLevel) Valid() bool {
	return l >= SkillLevelLow && l <= SkillLevelHigh
}

// Skill is an immutable catalog entry, created once at seed time.
type Skill struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(128);not null;uniqueIndex" json:"name"`
	Category string `gorm:"type:varchar(64);not null;index" json:"category"`
}

// TableName specifies the table name for GORM
func (Skill) TableName() string {
	return "skills"
}

// UserSkill declares what a user can teach, one row per (user, skill) pair.
type UserSkill struct {
	UserID  uint       `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	SkillID uint       `gorm:"primaryKey;autoIncrement:false" json:"skill_id"`
	Level   SkillLevel `gorm:"not null" json:"level"`

	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (UserSkill) TableName() string {
	return "user_skills"
}

// UserInterest declares what a user wants to learn, one row per (user, skill)
// pair. A user may hold the same skill as both UserSkill and UserInterest.
type UserInterest struct {
	UserID  uint       `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	SkillID uint       `gorm:"primaryKey;autoIncrement:false" json:"skill_id"`
	Level   SkillLevel `gorm:"not null" json:"level"`

	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (UserInterest) TableName() string {
	return "user_interests"
}

// SkillWithLevels is one catalog row annotated with the caller's declared
// levels (0 = not declared). Used by the profile skill listing.
type SkillWithLevels struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	TeachLevel    SkillLevel `json:"teach_level"`
	InterestLevel SkillLevel `json:"interest_level"`
}

// RatedSkill is a (skill, level) pair handed to the matching engine.
type RatedSkill struct {
	SkillID uint
	Label   string
	Level   SkillLevel
}
