package services

import "fleetdash-backend/models"

// statusBadges is the fixed badge lookup per maintenance status. The
// upstream service is the sole owner of status truth; nothing here infers
// overdue/due-soon from dates.
var statusBadges = map[models.MaintenanceStatus]models.StatusBadge{
	models.MaintenanceStatusOverdue:    {Color: "red", Icon: "alert"},
	models.MaintenanceStatusDueSoon:    {Color: "orange", Icon: "clock"},
	models.MaintenanceStatusScheduled:  {Color: "blue", Icon: "calendar"},
	models.MaintenanceStatusInProgress: {Color: "yellow", Icon: "wrench"},
	models.MaintenanceStatusCompleted:  {Color: "green", Icon: "check"},
	models.MaintenanceStatusCancelled:  {Color: "gray", Icon: "x"},
}

// StatusBadge returns the render hint for a maintenance status. Unknown
// statuses fall back to the cancelled badge rather than failing the view.
func StatusBadge(status models.MaintenanceStatus) models.StatusBadge {
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	return statusBadges[models.MaintenanceStatusCancelled]
}

// MileageProgress returns how far along an item is toward its due mileage,
// as a percentage clamped to [0,100]. A zero or negative due mileage yields
// 0 so the progress bar stays hidden instead of dividing by zero.
func MileageProgress(currentMileage, dueMileage int) float64 {
	if dueMileage <= 0 {
		return 0
	}
	if currentMileage <= 0 {
		return 0
	}
	progress := float64(currentMileage) / float64(dueMileage) * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// AnnotateItem attaches the derived display fields to a maintenance item
func AnnotateItem(item models.MaintenanceItem) models.MaintenanceItemView {
	return models.MaintenanceItemView{
		MaintenanceItem: item,
		Badge:           StatusBadge(item.Status),
		MileageProgress: MileageProgress(item.CurrentMileage, item.DueMileage),
	}
}

// AnnotateItems maps AnnotateItem over a slice, preserving order
func AnnotateItems(items []models.MaintenanceItem) []models.MaintenanceItemView {
	views := make([]models.MaintenanceItemView, 0, len(items))
	for _, item := range items {
		views = append(views, AnnotateItem(item))
	}
	return views
}
