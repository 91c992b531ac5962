package selection

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFromMouse(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.MouseMsg
		wantOK   bool
		wantKind PointerKind
		wantBtn  Button
	}{
		{
			name:     "left press",
			msg:      tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			wantOK:   true,
			wantKind: PointerDown,
			wantBtn:  ButtonPrimary,
		},
		{
			name:     "drag motion",
			msg:      tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			wantOK:   true,
			wantKind: PointerMove,
			wantBtn:  ButtonPrimary,
		},
		{
			name:     "release without button",
			msg:      tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			wantOK:   true,
			wantKind: PointerUp,
			wantBtn:  ButtonNone,
		},
		{
			name:     "right press",
			msg:      tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			wantOK:   true,
			wantKind: PointerDown,
			wantBtn:  ButtonOther,
		},
		{
			name:   "wheel",
			msg:    tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := FromMouse(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if p.Kind != tt.wantKind || p.Button != tt.wantBtn {
				t.Errorf("got kind %v button %v, want %v %v", p.Kind, p.Button, tt.wantKind, tt.wantBtn)
			}
			if p.Point.X != 3 || p.Point.Y != 4 {
				t.Errorf("point = %+v, want (3,4)", p.Point)
			}
		})
	}
}

func TestPointerKind_String(t *testing.T) {
	if PointerDown.String() != "down" || PointerUp.String() != "up" || PointerKind(9).String() != "PointerKind(9)" {
		t.Error("unexpected PointerKind strings")
	}
	if StateDragging.String() != "dragging" {
		t.Errorf("StateDragging = %q", StateDragging.String())
	}
}
