package wizard

import (
	"fmt"
	"testing"

	"github.com/arulmurugan/vidhai/internal/exam"
)

func testStructure() exam.Structure {
	topics := make([]string, 19)
	for i := range topics {
		topics[i] = fmt.Sprintf("topic_%02d", i)
	}
	return exam.Structure{
		"General Tamil": {
			"unit_1": topics,
			"unit_2": {"ilakkiyam"},
		},
		"General Studies": {
			"unit_1": {"polity", "economy"},
		},
	}
}

func TestPaginate(t *testing.T) {
	topics := make([]string, 19)
	for i := range topics {
		topics[i] = fmt.Sprintf("t%d", i)
	}
	cases := []struct {
		page     int
		wantLen  int
		wantPrev bool
		wantNext bool
	}{
		{0, 8, false, true},
		{1, 8, true, true},
		{2, 3, true, false},
		{3, 0, true, false},
	}
	for _, c := range cases {
		p := Paginate(topics, c.page)
		if len(p.Items) != c.wantLen || p.HasPrev != c.wantPrev || p.HasNext != c.wantNext {
			t.Errorf("page %d: len=%d prev=%v next=%v, want len=%d prev=%v next=%v",
				c.page, len(p.Items), p.HasPrev, p.HasNext, c.wantLen, c.wantPrev, c.wantNext)
		}
	}
}

func TestPaginate_ExactMultiple(t *testing.T) {
	topics := make([]string, 16)
	for i := range topics {
		topics[i] = fmt.Sprintf("t%d", i)
	}
	p := Paginate(topics, 1)
	if p.HasNext {
		t.Error("page 1 of 16 topics must not have a next page")
	}
	if len(p.Items) != 8 {
		t.Errorf("len = %d, want 8", len(p.Items))
	}
}

func TestWizard_TopicWiseFlow(t *testing.T) {
	w := New(testStructure())
	if w.Step() != StepMode {
		t.Fatalf("initial step = %v, want StepMode", w.Step())
	}

	w.ChooseTopicWise()
	if w.Step() != StepSubject {
		t.Fatalf("step = %v, want StepSubject", w.Step())
	}

	w.ChooseSubject("General Tamil")
	if w.Step() != StepTopic {
		t.Fatalf("step = %v, want StepTopic", w.Step())
	}
	if w.ModalOpen() {
		t.Error("General Tamil must not open the language modal")
	}
	if w.Selection().Language != "Tamil" {
		t.Errorf("language = %q, want Tamil", w.Selection().Language)
	}

	w.ChooseUnit("unit_1")
	if !w.UnitOpen() {
		t.Fatal("unit not open after ChooseUnit")
	}
	page := w.TopicPage()
	if len(page.Items) != 8 || page.HasPrev || !page.HasNext {
		t.Errorf("first topic page wrong: %+v", page)
	}
	w.NextTopicPage()
	w.NextTopicPage()
	if got := w.TopicPage(); len(got.Items) != 3 || got.HasNext {
		t.Errorf("last topic page wrong: %+v", got)
	}
	w.NextTopicPage() // clamped
	if w.TopicPage().Number != 2 {
		t.Errorf("page advanced past end: %d", w.TopicPage().Number)
	}

	w.ChooseTopic("topic_17")
	if w.Step() != StepConfig {
		t.Fatalf("step = %v, want StepConfig", w.Step())
	}
	w.SetConfig(25, 30)

	sel := w.Selection()
	if sel.Subject != "General Tamil" || sel.Unit != "unit_1" || sel.Topic != "topic_17" ||
		sel.NumQuestions != 25 || sel.DurationMin != 30 {
		t.Errorf("selection = %+v", sel)
	}
}

func TestWizard_GeneralStudiesRoutesThroughModal(t *testing.T) {
	w := New(testStructure())
	w.ChooseTopicWise()
	w.ChooseSubject(exam.SubjectGeneralStudies)
	if !w.ModalOpen() {
		t.Fatal("General Studies must open the language modal")
	}
	if w.Pending() != PendingStandard {
		t.Errorf("pending = %v, want PendingStandard", w.Pending())
	}
	if w.Step() != StepSubject {
		t.Errorf("wizard advanced before language confirmation")
	}

	action := w.ConfirmLanguage("English")
	if action != PendingStandard {
		t.Errorf("action = %v, want PendingStandard", action)
	}
	if w.Step() != StepTopic {
		t.Errorf("step = %v, want StepTopic after confirmation", w.Step())
	}
	if w.Selection().Language != "English" {
		t.Errorf("language = %q", w.Selection().Language)
	}
}

func TestWizard_MockGSModal(t *testing.T) {
	w := New(testStructure())
	w.OpenMockGSModal()
	if w.Pending() != PendingMockGS {
		t.Fatalf("pending = %v, want PendingMockGS", w.Pending())
	}
	action := w.ConfirmLanguage("Tamil")
	if action != PendingMockGS {
		t.Errorf("action = %v, want PendingMockGS", action)
	}
	// The mock shortcut bypasses the wizard steps.
	if w.Step() != StepMode {
		t.Errorf("step = %v, want StepMode", w.Step())
	}
}

func TestWizard_DismissModalDiscardsPending(t *testing.T) {
	w := New(testStructure())
	w.OpenMockGSModal()
	w.DismissModal()
	if w.ModalOpen() || w.Pending() != PendingNone {
		t.Error("modal state not cleared on dismiss")
	}
}

func TestWizard_BackDiscardsDeeperSelections(t *testing.T) {
	w := New(testStructure())
	w.ChooseTopicWise()
	w.ChooseSubject("General Tamil")
	w.ChooseUnit("unit_1")
	w.ChooseTopic("topic_03")

	if got := w.Back(); got != StepTopic {
		t.Fatalf("back from config = %v, want StepTopic", got)
	}
	if w.Selection().Topic != "" {
		t.Error("topic not discarded")
	}

	if got := w.Back(); got != StepTopic {
		t.Fatalf("back from topics = %v, want StepTopic (unit list)", got)
	}
	if w.UnitOpen() || w.Selection().Unit != "" {
		t.Error("unit not discarded")
	}

	if got := w.Back(); got != StepSubject {
		t.Fatalf("back from unit list = %v, want StepSubject", got)
	}
	// Subject survives back-navigation.
	if w.Selection().Subject != "General Tamil" {
		t.Errorf("subject = %q, want General Tamil", w.Selection().Subject)
	}

	if got := w.Back(); got != StepMode {
		t.Fatalf("back = %v, want StepMode", got)
	}
	if got := w.Back(); got != StepMode {
		t.Fatalf("back at mode selection = %v, want no-op", got)
	}
}

func TestWizard_EmptySubjectYieldsNoUnits(t *testing.T) {
	w := New(exam.Structure{"Empty Subject": {}})
	w.ChooseTopicWise()
	w.ChooseSubject("Empty Subject")
	if got := w.Units(); len(got) != 0 {
		t.Errorf("Units = %v, want empty", got)
	}
	// Back navigation still works from the empty listing.
	if got := w.Back(); got != StepSubject {
		t.Errorf("back = %v, want StepSubject", got)
	}
}
