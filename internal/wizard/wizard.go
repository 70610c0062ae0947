// Package wizard holds the selection flow state machine: mode →
// subject → unit/topic → config, with a language modal that can be
// entered either from subject selection or from the General Studies
// mock shortcut. The package is UI-free; screens call into it and
// render whatever it reports.
package wizard

import "github.com/arulmurugan/vidhai/internal/exam"

// Step identifies a wizard step.
type Step int

const (
	StepMode Step = iota
	StepSubject
	StepTopic
	StepConfig
)

// Default test configuration.
const (
	DefaultNumQuestions = 10
	MinNumQuestions     = 5
	MaxNumQuestions     = 50
	DefaultDurationMin  = 10
)

// PendingAction tags why the language modal was opened, so its
// confirmation handler knows whether to resume the wizard flow or
// launch a mock test directly.
type PendingAction int

const (
	PendingNone     PendingAction = iota
	PendingStandard               // continue the topic-wise wizard
	PendingMockGS                 // launch the General Studies mock
)

// Selection accumulates the user's choices across wizard steps. Once
// generation begins it is read-only.
type Selection struct {
	Subject      string
	Unit         string
	Topic        string
	Language     string
	NumQuestions int
	DurationMin  int
}

// Wizard is the selection flow state machine.
type Wizard struct {
	structure exam.Structure

	step      Step
	selection Selection

	// Language modal sub-state.
	modalOpen bool
	pending   PendingAction

	// Topic pagination within StepTopic.
	topicPage int
	unitOpen  bool // a unit has been picked and topics are listed
}

// New creates a wizard over a fetched structure tree.
func New(structure exam.Structure) *Wizard {
	return &Wizard{
		structure: structure,
		step:      StepMode,
		selection: Selection{
			NumQuestions: DefaultNumQuestions,
			DurationMin:  DefaultDurationMin,
		},
	}
}

// Step returns the current wizard step.
func (w *Wizard) Step() Step { return w.step }

// Selection returns a copy of the accumulated selection.
func (w *Wizard) Selection() Selection { return w.selection }

// Structure returns the tree the wizard navigates.
func (w *Wizard) Structure() exam.Structure { return w.structure }

// ModalOpen reports whether the language modal is showing.
func (w *Wizard) ModalOpen() bool { return w.modalOpen }

// Pending returns the action tagged on the open language modal.
func (w *Wizard) Pending() PendingAction { return w.pending }

// UnitOpen reports whether a unit's topic list is showing.
func (w *Wizard) UnitOpen() bool { return w.unitOpen }

// ChooseTopicWise enters the topic-wise flow from mode selection.
func (w *Wizard) ChooseTopicWise() {
	w.step = StepSubject
}

// OpenMockGSModal opens the language modal for the General Studies mock
// shortcut; the wizard itself is bypassed.
func (w *Wizard) OpenMockGSModal() {
	w.modalOpen = true
	w.pending = PendingMockGS
}

// ChooseSubject records the subject. General Studies routes through the
// language modal first; other subjects proceed straight to the unit
// list. Returns the step now showing.
func (w *Wizard) ChooseSubject(subject string) Step {
	w.selection.Subject = subject
	if subject == exam.SubjectGeneralStudies {
		w.modalOpen = true
		w.pending = PendingStandard
		return w.step
	}
	w.selection.Language = "Tamil"
	w.enterTopicStep()
	return w.step
}

// ConfirmLanguage closes the modal with the chosen language and resumes
// the tagged action. The returned action tells the caller whether to
// continue the wizard (PendingStandard, already advanced) or launch the
// General Studies mock.
func (w *Wizard) ConfirmLanguage(language string) PendingAction {
	w.selection.Language = language
	w.modalOpen = false
	action := w.pending
	w.pending = PendingNone
	if action == PendingStandard {
		w.enterTopicStep()
	}
	return action
}

// DismissModal closes the language modal without choosing; the pending
// action is discarded.
func (w *Wizard) DismissModal() {
	w.modalOpen = false
	w.pending = PendingNone
}

// Units lists the units of the selected subject. Empty means the
// subject has no content; the screen shows an inline message.
func (w *Wizard) Units() []string {
	return w.structure.Units(w.selection.Subject)
}

// ChooseUnit records the unit and opens its topic list at page 0.
func (w *Wizard) ChooseUnit(unit string) {
	w.selection.Unit = unit
	w.unitOpen = true
	w.topicPage = 0
}

// TopicPage returns the current page of topics for the open unit.
func (w *Wizard) TopicPage() Page {
	topics := w.structure.Topics(w.selection.Subject, w.selection.Unit)
	return Paginate(topics, w.topicPage)
}

// NextTopicPage advances the topic page when a next page exists.
func (w *Wizard) NextTopicPage() {
	if w.TopicPage().HasNext {
		w.topicPage++
	}
}

// PrevTopicPage steps the topic page back when a prior page exists.
func (w *Wizard) PrevTopicPage() {
	if w.TopicPage().HasPrev {
		w.topicPage--
	}
}

// ChooseTopic records the topic and advances to config.
func (w *Wizard) ChooseTopic(topic string) {
	w.selection.Topic = topic
	w.step = StepConfig
}

// SetConfig records the test shape collected on the config step.
func (w *Wizard) SetConfig(numQuestions, durationMin int) {
	w.selection.NumQuestions = numQuestions
	w.selection.DurationMin = durationMin
}

// Back returns to the previous step, discarding deeper selections
// (unit/topic) but keeping the subject. At mode selection it is a no-op.
func (w *Wizard) Back() Step {
	switch w.step {
	case StepConfig:
		w.selection.Topic = ""
		w.step = StepTopic
	case StepTopic:
		if w.unitOpen {
			w.unitOpen = false
			w.selection.Unit = ""
			w.topicPage = 0
		} else {
			w.step = StepSubject
		}
	case StepSubject:
		w.step = StepMode
	}
	return w.step
}

func (w *Wizard) enterTopicStep() {
	w.step = StepTopic
	w.unitOpen = false
	w.selection.Unit = ""
	w.selection.Topic = ""
	w.topicPage = 0
}
