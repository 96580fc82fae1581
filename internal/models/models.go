package models

// All lists every model that is auto-migrated at startup.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Session{},
		&EmergencyContact{},
		&EmergencyAlert{},
		&CommunityReport{},
		&SafetyZone{},
		&SystemLog{},
	}
}
