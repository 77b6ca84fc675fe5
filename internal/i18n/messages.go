package i18n

import "github.com/CrueChan/Timer/internal/domain"

// Translation keys.
const (
	KeyPageTitle       = "pageTitle"
	KeyPageDescription = "pageDescription"

	KeyStartButton = domain.LabelStart
	KeyStopButton  = domain.LabelStop
	KeyResetButton = "resetButton"
	KeySetButton   = "setButton"

	KeyHoursLabel   = "hoursLabel"
	KeyMinutesLabel = "minutesLabel"
	KeySecondsLabel = "secondsLabel"

	KeyHoursUnit   = "hoursUnit"
	KeyMinutesUnit = "minutesUnit"
	KeySecondsUnit = "secondsUnit"

	KeyStartStopAriaLabel    = "startStopAriaLabel"
	KeyResetAriaLabel        = "resetAriaLabel"
	KeySetAriaLabel          = "setAriaLabel"
	KeyHoursAriaLabel        = "hoursAriaLabel"
	KeyMinutesAriaLabel      = "minutesAriaLabel"
	KeySecondsAriaLabel      = "secondsAriaLabel"
	KeyTimerDisplayAriaLabel = "timerDisplayAriaLabel"

	KeyCopyright    = "copyright"
	KeyReportIssues = "reportIssues"

	KeyLanguageToggle = "languageToggle"
	KeyLanguageName   = "languageName"

	KeyPhaseIdle    = "phaseIdle"
	KeyPhaseRunning = "phaseRunning"
	KeyPhasePaused  = "phasePaused"

	KeyHelpFocus  = "helpFocus"
	KeyHelpTheme  = "helpTheme"
	KeyHelpScheme = "helpScheme"
	KeyHelpQuit   = "helpQuit"

	KeyAlertTitle   = "alertTitle"
	KeyAlertMessage = "alertMessage"
)

// messages is the static translation table.
var messages = map[domain.Language]map[string]string{
	domain.LanguageEnglish: {
		KeyPageTitle:       "Timer",
		KeyPageDescription: "Easy-to-use timer",

		KeyStartButton: "START",
		KeyStopButton:  "STOP",
		KeyResetButton: "RESET",
		KeySetButton:   "SET",

		KeyHoursLabel:   "Hours:",
		KeyMinutesLabel: "Minutes:",
		KeySecondsLabel: "Seconds:",

		KeyHoursUnit:   "H",
		KeyMinutesUnit: "M",
		KeySecondsUnit: "S",

		KeyStartStopAriaLabel:    "Start or stop the timer",
		KeyResetAriaLabel:        "Reset the timer to initial state",
		KeySetAriaLabel:          "Set timer with the input values",
		KeyHoursAriaLabel:        "Hours input field",
		KeyMinutesAriaLabel:      "Minutes input field",
		KeySecondsAriaLabel:      "Seconds input field",
		KeyTimerDisplayAriaLabel: "Timer display",

		KeyCopyright:    "© Crue Chan",
		KeyReportIssues: "Report Issues",

		KeyLanguageToggle: "EN",
		KeyLanguageName:   "English",

		KeyPhaseIdle:    "Ready",
		KeyPhaseRunning: "Running",
		KeyPhasePaused:  "Paused",

		KeyHelpFocus:  "focus",
		KeyHelpTheme:  "light/dark",
		KeyHelpScheme: "colors",
		KeyHelpQuit:   "quit",

		KeyAlertTitle:   "Time's up!",
		KeyAlertMessage: "Your countdown has finished.",
	},
	domain.LanguageChinese: {
		KeyPageTitle:       "计时器",
		KeyPageDescription: "简单易用的计时器",

		KeyStartButton: "开始",
		KeyStopButton:  "停止",
		KeyResetButton: "重置",
		KeySetButton:   "设置",

		KeyHoursLabel:   "小时:",
		KeyMinutesLabel: "分钟:",
		KeySecondsLabel: "秒:",

		KeyHoursUnit:   "时",
		KeyMinutesUnit: "分",
		KeySecondsUnit: "秒",

		KeyStartStopAriaLabel:    "启动或停止计时器",
		KeyResetAriaLabel:        "将计时器重置为初始状态",
		KeySetAriaLabel:          "使用输入值设置计时器",
		KeyHoursAriaLabel:        "小时输入框",
		KeyMinutesAriaLabel:      "分钟输入框",
		KeySecondsAriaLabel:      "秒输入框",
		KeyTimerDisplayAriaLabel: "计时器显示",

		KeyCopyright:    "© Crue Chan",
		KeyReportIssues: "报告问题",

		KeyLanguageToggle: "中",
		KeyLanguageName:   "简体中文",

		KeyPhaseIdle:    "就绪",
		KeyPhaseRunning: "计时中",
		KeyPhasePaused:  "已暂停",

		KeyHelpFocus:  "切换焦点",
		KeyHelpTheme:  "明暗",
		KeyHelpScheme: "配色",
		KeyHelpQuit:   "退出",

		KeyAlertTitle:   "时间到！",
		KeyAlertMessage: "倒计时已结束。",
	},
}

// PhaseKey returns the translation key for a phase label.
func PhaseKey(p domain.Phase) string {
	switch p {
	case domain.PhaseRunning:
		return KeyPhaseRunning
	case domain.PhasePaused:
		return KeyPhasePaused
	default:
		return KeyPhaseIdle
	}
}
