package input

// Joysticks returns one joystick controller per player, bound to device
// indices 0..players-1. When fewer devices than players are connected it
// returns nil so the caller can fall back to the keyboard.
func Joysticks(provider DeviceProvider, players int, speed float64, bs ...Binding) []Controller {
	if provider == nil || players <= 0 || provider.Count() < players {
		return nil
	}

	controllers := make([]Controller, 0, players)
	for i := 0; i < players; i++ {
		controllers = append(controllers, NewJoystickController(provider.Device(i), speed, bs...))
	}
	return controllers
}
