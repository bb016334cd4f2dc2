package display

import (
	"github.com/BrandonKowalski/onboard/pkg/onboard/constants"
	"github.com/BrandonKowalski/onboard/pkg/onboard/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is an input event mapped to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_a:         constants.VirtualButtonA,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_b:         constants.VirtualButtonB,
	sdl.K_ESCAPE:    constants.VirtualButtonMenu,
	sdl.K_TAB:       constants.VirtualButtonSelect,
}

var controllerMapping = map[int]constants.VirtualButton{
	int(sdl.CONTROLLER_BUTTON_DPAD_UP):    constants.VirtualButtonUp,
	int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):  constants.VirtualButtonDown,
	int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):  constants.VirtualButtonLeft,
	int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT): constants.VirtualButtonRight,
	int(sdl.CONTROLLER_BUTTON_A):          constants.VirtualButtonA,
	int(sdl.CONTROLLER_BUTTON_B):          constants.VirtualButtonB,
	int(sdl.CONTROLLER_BUTTON_START):      constants.VirtualButtonStart,
	int(sdl.CONTROLLER_BUTTON_BACK):       constants.VirtualButtonSelect,
	int(sdl.CONTROLLER_BUTTON_GUIDE):      constants.VirtualButtonMenu,
}

// ProcessSDLEvent maps keyboard and game controller events. Key repeats and
// unmapped inputs return nil.
func ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := keyboardMapping[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerButtonEvent:
		button, ok := controllerMapping[int(e.Button)]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.State == sdl.PRESSED}

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			openController(int(e.Which))
		}
	}

	return nil
}

var controllers = map[int]*sdl.GameController{}

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		openController(i)
	}
}

func openController(index int) {
	if _, open := controllers[index]; open || !sdl.IsGameController(index) {
		return
	}
	if c := sdl.GameControllerOpen(index); c != nil {
		controllers[index] = c
		internal.GetInternalLogger().Debug("Opened game controller", "index", index, "name", c.Name())
	}
}

func closeControllers() {
	for i, c := range controllers {
		c.Close()
		delete(controllers, i)
	}
}
