package webapp

// HapticImpactStyle selects the strength of an impact vibration.
type HapticImpactStyle string

const (
	ImpactLight  HapticImpactStyle = "light"
	ImpactMedium HapticImpactStyle = "medium"
	ImpactHeavy  HapticImpactStyle = "heavy"
	ImpactRigid  HapticImpactStyle = "rigid"
	ImpactSoft   HapticImpactStyle = "soft"
)

// HapticNotificationType selects the pattern of a notification vibration.
type HapticNotificationType string

const (
	NotificationError   HapticNotificationType = "error"
	NotificationSuccess HapticNotificationType = "success"
	NotificationWarning HapticNotificationType = "warning"
)

// HapticImpact fires an impact vibration.
func (w *WebApp) HapticImpact(style HapticImpactStyle) error {
	return w.callNested("HapticFeedback", "impactOccurred", string(style))
}

// HapticNotification fires a notification vibration.
func (w *WebApp) HapticNotification(kind HapticNotificationType) error {
	return w.callNested("HapticFeedback", "notificationOccurred", string(kind))
}

// HapticSelectionChanged fires the selection-change tick.
func (w *WebApp) HapticSelectionChanged() error {
	return w.callNested("HapticFeedback", "selectionChanged")
}
