package ui

import (
	"go.uber.org/zap"

	"mindnest/internal/ui/widget"
)

// Default panel extent in cells. Every primary panel shares it so the state
// machine can swap them in place.
var panelSize = widget.Size{W: 64, H: 18}

// SeasonOptions is the fixed option list for the tree configurator's season
// dropdown. Index 0 is the default.
var SeasonOptions = []string{"Default", "Spring", "Summer", "Autumn", "Winter"}

// AvatarColors are the customization swatches.
var AvatarColors = []string{"#a6e3a1", "#89b4fa", "#f9e2af", "#f38ba8"}

// Panels holds every constructed panel plus the named widget handles outer
// logic binds handlers to. Construction runs exactly once at startup.
type Panels struct {
	Welcome       *Panel
	Customization *Panel
	Checkin       *Panel
	MainMenu      *Panel
	Breathing     *Panel
	Altruistic    *Panel
	TreeControl   *Panel
	History       *Panel
	TaskOverlay   *Panel

	// welcome
	WelcomeBegin *widget.Button

	// customization
	NameInput  *widget.TextInput
	SizeSlider *widget.Slider
	Swatches   []*widget.ColorButton
	CustomDone *widget.Button

	// check-in
	Transcript  *widget.ScrollList
	Thinking    *widget.Text
	CheckinText *widget.TextInput
	SendButton  *widget.Button
	ContinueBtn *widget.Button

	// main menu sidebar
	MenuBreathing  *widget.Button
	MenuAltruistic *widget.Button
	MenuTree       *widget.Button
	MenuHistory    *widget.Button
	MenuCheckin    *widget.Button

	// breathing
	BreathPhase  *widget.Text
	BreathCount  *widget.Text
	BreathCycle  *widget.Text
	BreathFinish *widget.Button

	// altruistic
	TouchCounter  *widget.Text
	CameraPreview *widget.Node
	AltFinish     *widget.Button

	// tree control
	SeasonDropdown *widget.Dropdown
	GrowthSlider   *widget.Slider
	WaterButton    *widget.Button
	NutrientTotal  *widget.Text
	TreeClose      *widget.Button

	// history
	HistoryList *widget.ScrollList
	HistoryBack *widget.Button

	// task overlay
	TaskPrompt  *widget.Text
	TaskDismiss *widget.Button
}

// BuildPanels assembles the eight primary panels plus the task overlay from
// factory primitives, one builder routine per panel, then hides everything
// exactly once so the state machine decides what shows first.
func BuildPanels(f *widget.Factory, vis *VisibilityController, log *zap.Logger) *Panels {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Panels{}
	p.buildWelcome(f)
	p.buildCustomization(f)
	p.buildCheckin(f)
	p.buildMainMenu(f)
	p.buildBreathing(f)
	p.buildAltruistic(f)
	p.buildTreeControl(f)
	p.buildHistory(f)
	p.buildTaskOverlay(f)

	for _, panel := range []*Panel{
		p.Welcome, p.Customization, p.Checkin, p.MainMenu,
		p.Breathing, p.Altruistic, p.TreeControl, p.History,
	} {
		vis.Register(panel)
	}
	vis.RegisterOverlay(p.TaskOverlay)

	// post-construction default: everything hidden, once.
	vis.HideAll()
	log.Info("panels built", zap.Int("primary", 8))
	return p
}

func (p *Panels) buildWelcome(f *widget.Factory) {
	panel := NewPanel(PanelWelcome, panelSize)
	root := panel.Root()
	f.NewText(root, "welcome/title", widget.Point{Y: -5}, widget.Size{W: 40, H: 1}, "Welcome to MindNest", true)
	f.NewText(root, "welcome/subtitle", widget.Point{Y: -3}, widget.Size{W: 52, H: 2},
		"A quiet place to breathe, care, and grow.\nLet's set up your companion.", false)
	p.WelcomeBegin = f.NewButton(root, "welcome/begin", widget.Point{Y: 3}, widget.Size{W: 14, H: 1}, "Begin", nil)
	panel.Bind(p.WelcomeBegin)
	p.Welcome = panel
}

func (p *Panels) buildCustomization(f *widget.Factory) {
	panel := NewPanel(PanelCustomization, panelSize)
	root := panel.Root()
	f.NewText(root, "custom/title", widget.Point{Y: -7}, widget.Size{W: 40, H: 1}, "Customize your companion", true)

	f.NewText(root, "custom/name_label", widget.Point{X: -20, Y: -4}, widget.Size{W: 10, H: 1}, "Name", false)
	p.NameInput = f.NewTextInput(root, "custom/name", widget.Point{X: 6, Y: -4}, widget.Size{W: 30, H: 1}, "Nomi", nil)
	panel.Bind(p.NameInput)

	f.NewText(root, "custom/size_label", widget.Point{X: -20, Y: -2}, widget.Size{W: 10, H: 1}, "Size", false)
	p.SizeSlider = f.NewSlider(root, "custom/size", widget.Point{X: 6, Y: -2}, widget.Size{W: 30, H: 1}, 0.5, 2.0, 1.0, nil)
	panel.Bind(p.SizeSlider)

	f.NewText(root, "custom/color_label", widget.Point{X: -20, Y: 0}, widget.Size{W: 10, H: 1}, "Color", false)
	for i, color := range AvatarColors {
		swatch := f.NewColorButton(root, "custom/color"+color, widget.Point{X: -6 + i*8, Y: 0}, widget.Size{W: 5, H: 1}, color, nil)
		p.Swatches = append(p.Swatches, swatch)
		panel.Bind(swatch)
	}

	p.CustomDone = f.NewButton(root, "custom/done", widget.Point{Y: 5}, widget.Size{W: 14, H: 1}, "Finish", nil)
	panel.Bind(p.CustomDone)
	p.Customization = panel
}

func (p *Panels) buildCheckin(f *widget.Factory) {
	panel := NewPanel(PanelCheckin, panelSize)
	root := panel.Root()
	f.NewText(root, "checkin/title", widget.Point{Y: -8}, widget.Size{W: 40, H: 1}, "How are you feeling?", true)

	p.Transcript = f.NewScrollList(root, "checkin/transcript", widget.Point{Y: -2}, widget.Size{W: 58, H: 9})
	panel.Bind(p.Transcript)

	p.Thinking = f.NewText(root, "checkin/thinking", widget.Point{X: -22, Y: 3}, widget.Size{W: 14, H: 1}, "Thinking…", false)
	p.Thinking.Node().Hide()
	panel.Bind(p.Thinking)

	p.CheckinText = f.NewTextInput(root, "checkin/input", widget.Point{X: -6, Y: 5}, widget.Size{W: 40, H: 1}, "Tell Nomi how today went", nil)
	panel.Bind(p.CheckinText)
	p.SendButton = f.NewButton(root, "checkin/send", widget.Point{X: 20, Y: 5}, widget.Size{W: 8, H: 1}, "Send", nil)
	panel.Bind(p.SendButton)

	p.ContinueBtn = f.NewButton(root, "checkin/continue", widget.Point{Y: 7}, widget.Size{W: 14, H: 1}, "Continue", nil)
	panel.Bind(p.ContinueBtn)
	p.Checkin = panel
}

func (p *Panels) buildMainMenu(f *widget.Factory) {
	panel := NewPanel(PanelMainMenu, panelSize)
	root := panel.Root()
	f.NewText(root, "menu/title", widget.Point{Y: -7}, widget.Size{W: 30, H: 1}, "MindNest", true)
	f.NewText(root, "menu/greeting", widget.Point{X: 10, Y: -2}, widget.Size{W: 36, H: 3},
		"Your companion is here.\nPick an activity from the sidebar.", false)

	// sidebar: fixed anchor layout, one button per activity.
	p.MenuBreathing = f.NewButton(root, "menu/breathing", widget.Point{X: -20, Y: -3}, widget.Size{W: 18, H: 1}, "Breathing", nil)
	p.MenuAltruistic = f.NewButton(root, "menu/altruistic", widget.Point{X: -20, Y: -1}, widget.Size{W: 18, H: 1}, "Comfort Nomi", nil)
	p.MenuTree = f.NewButton(root, "menu/tree", widget.Point{X: -20, Y: 1}, widget.Size{W: 18, H: 1}, "Your Tree", nil)
	p.MenuHistory = f.NewButton(root, "menu/history", widget.Point{X: -20, Y: 3}, widget.Size{W: 18, H: 1}, "History", nil)
	p.MenuCheckin = f.NewButton(root, "menu/checkin", widget.Point{X: -20, Y: 5}, widget.Size{W: 18, H: 1}, "Check in", nil)
	for _, b := range []*widget.Button{p.MenuBreathing, p.MenuAltruistic, p.MenuTree, p.MenuHistory, p.MenuCheckin} {
		panel.Bind(b)
	}
	p.MainMenu = panel
}

func (p *Panels) buildBreathing(f *widget.Factory) {
	panel := NewPanel(PanelBreathing, panelSize)
	root := panel.Root()
	f.NewText(root, "breathing/title", widget.Point{Y: -7}, widget.Size{W: 30, H: 1}, "Guided breathing", true)
	p.BreathPhase = f.NewText(root, "breathing/phase", widget.Point{Y: -3}, widget.Size{W: 20, H: 1}, "Inhale", true)
	panel.Bind(p.BreathPhase)
	p.BreathCount = f.NewText(root, "breathing/count", widget.Point{Y: -1}, widget.Size{W: 20, H: 1}, "", false)
	panel.Bind(p.BreathCount)
	p.BreathCycle = f.NewText(root, "breathing/cycle", widget.Point{Y: 1}, widget.Size{W: 24, H: 1}, "", false)
	panel.Bind(p.BreathCycle)
	p.BreathFinish = f.NewButton(root, "breathing/finish", widget.Point{Y: 5}, widget.Size{W: 14, H: 1}, "Finish", nil)
	panel.Bind(p.BreathFinish)
	p.Breathing = panel
}

func (p *Panels) buildAltruistic(f *widget.Factory) {
	panel := NewPanel(PanelAltruistic, panelSize)
	root := panel.Root()
	f.NewText(root, "altruistic/title", widget.Point{Y: -7}, widget.Size{W: 30, H: 1}, "Comfort Nomi", true)
	f.NewText(root, "altruistic/hint", widget.Point{Y: -4}, widget.Size{W: 48, H: 2},
		"Reach out and stroke Nomi gently.\nThree slow touches are enough.", false)
	p.TouchCounter = f.NewText(root, "altruistic/touches", widget.Point{Y: -1}, widget.Size{W: 20, H: 1}, "Touches: 0 / 3", true)
	panel.Bind(p.TouchCounter)

	// camera preview toggles with palm tracking.
	preview := f.NewText(root, "altruistic/preview", widget.Point{Y: 2}, widget.Size{W: 22, H: 3},
		"┌ hand preview ┐\n│  ✋ tracking  │\n└──────────────┘", false)
	p.CameraPreview = preview.Node()
	p.CameraPreview.Hide()

	p.AltFinish = f.NewButton(root, "altruistic/finish", widget.Point{Y: 6}, widget.Size{W: 14, H: 1}, "Finish", nil)
	panel.Bind(p.AltFinish)
	p.Altruistic = panel
}

func (p *Panels) buildTreeControl(f *widget.Factory) {
	panel := NewPanel(PanelTreeControl, panelSize)
	root := panel.Root()
	f.NewText(root, "tree/title", widget.Point{Y: -7}, widget.Size{W: 30, H: 1}, "Your tree", true)

	f.NewText(root, "tree/season_label", widget.Point{X: -22, Y: -4}, widget.Size{W: 10, H: 1}, "Season", false)
	p.SeasonDropdown = f.NewDropdown(root, "tree/season", widget.Point{X: 4, Y: -2}, widget.Size{W: 24, H: 7}, SeasonOptions, 1, nil)
	panel.Bind(p.SeasonDropdown)

	f.NewText(root, "tree/growth_label", widget.Point{X: -22, Y: 1}, widget.Size{W: 10, H: 1}, "Growth", false)
	p.GrowthSlider = f.NewSlider(root, "tree/growth", widget.Point{X: 6, Y: 1}, widget.Size{W: 30, H: 1}, 0, 100, 0, nil)
	panel.Bind(p.GrowthSlider)

	p.NutrientTotal = f.NewText(root, "tree/nutrients", widget.Point{X: -8, Y: 3}, widget.Size{W: 30, H: 1}, "Nutrients collected: 0", false)
	panel.Bind(p.NutrientTotal)

	p.WaterButton = f.NewButton(root, "tree/water", widget.Point{X: -10, Y: 6}, widget.Size{W: 12, H: 1}, "Water", nil)
	panel.Bind(p.WaterButton)
	p.TreeClose = f.NewButton(root, "tree/close", widget.Point{X: 10, Y: 6}, widget.Size{W: 12, H: 1}, "Close", nil)
	panel.Bind(p.TreeClose)
	p.TreeControl = panel
}

func (p *Panels) buildHistory(f *widget.Factory) {
	panel := NewPanel(PanelHistory, panelSize)
	root := panel.Root()
	f.NewText(root, "history/title", widget.Point{Y: -8}, widget.Size{W: 30, H: 1}, "Your journey", true)
	p.HistoryList = f.NewScrollList(root, "history/list", widget.Point{Y: -1}, widget.Size{W: 56, H: 11})
	panel.Bind(p.HistoryList)
	p.HistoryBack = f.NewButton(root, "history/back", widget.Point{Y: 7}, widget.Size{W: 12, H: 1}, "Back", nil)
	panel.Bind(p.HistoryBack)
	p.History = panel
}

func (p *Panels) buildTaskOverlay(f *widget.Factory) {
	panel := NewPanel(PanelTaskOverlay, widget.Size{W: 46, H: 9})
	root := panel.Root()
	f.NewText(root, "task/title", widget.Point{Y: -3}, widget.Size{W: 24, H: 1}, "A little task for you", true)
	p.TaskPrompt = f.NewText(root, "task/prompt", widget.Point{Y: 0}, widget.Size{W: 40, H: 2}, "", false)
	panel.Bind(p.TaskPrompt)
	p.TaskDismiss = f.NewButton(root, "task/dismiss", widget.Point{Y: 3}, widget.Size{W: 10, H: 1}, "Done", nil)
	panel.Bind(p.TaskDismiss)
	p.TaskOverlay = panel
}
