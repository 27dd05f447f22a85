package v1

import (
	"github.com/monet-app/backend/internal/models"
)

// SettingsEditable represents all user preferences that can be set by
// the client.
type SettingsEditable struct {
	PushNotifications           bool   `json:"pushNotifications" example:"true"`
	GoalDeadlineNotifications   bool   `json:"goalDeadlineNotifications" example:"true"`
	BudgetExceededNotifications bool   `json:"budgetExceededNotifications" example:"true"`
	DailyReminder               bool   `json:"dailyReminder" example:"false"`
	HideAmounts                 bool   `json:"hideAmounts" example:"false"`
	Theme                       string `json:"theme" example:"dark"`
	Language                    string `json:"language" example:"en"`
}

func (editable SettingsEditable) model() models.UserSettings {
	return models.UserSettings{
		PushNotifications:           editable.PushNotifications,
		GoalDeadlineNotifications:   editable.GoalDeadlineNotifications,
		BudgetExceededNotifications: editable.BudgetExceededNotifications,
		DailyReminder:               editable.DailyReminder,
		HideAmounts:                 editable.HideAmounts,
		Theme:                       editable.Theme,
		Language:                    editable.Language,
	}
}

type Settings struct {
	models.DefaultModel
	SettingsEditable
}

func newSettings(model models.UserSettings) Settings {
	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			PushNotifications:           model.PushNotifications,
			GoalDeadlineNotifications:   model.GoalDeadlineNotifications,
			BudgetExceededNotifications: model.BudgetExceededNotifications,
			DailyReminder:               model.DailyReminder,
			HideAmounts:                 model.HideAmounts,
			Theme:                       model.Theme,
			Language:                    model.Language,
		},
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"the request body must not be empty"`
	Data  *Settings `json:"data"`
}
