package availability

import "viavela/models"

// ReconcileSelection decides whether a previously chosen time survives a
// regeneration of the slot list. The time is kept only when the exact value
// is still present and enabled; otherwise it is cleared so callers never
// carry a stale selection silently.
func ReconcileSelection(selected string, slots []models.Slot) string {
	if selected == "" {
		return ""
	}
	for _, s := range slots {
		if s.Value == selected && s.Enabled {
			return selected
		}
	}
	return ""
}

// IsSlotEnabled reports whether value is an enabled slot in the list.
func IsSlotEnabled(value string, slots []models.Slot) bool {
	return value != "" && ReconcileSelection(value, slots) == value
}
