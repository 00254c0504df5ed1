package services

// HomeDisplayCount returns how many of n featured categories fit the home page grid
func HomeDisplayCount(n int, device Device) int {
	if n <= 0 {
		return 0
	}
	if device == DeviceMobile {
		switch {
		case n >= 8:
			return 8
		case n >= 6:
			return 6
		case n >= 4:
			return 4
		}
		return min(n, 2)
	}
	switch {
	case n >= 9:
		return 9
	case n >= 6:
		return 6
	}
	return min(n, 3)
}

// ParseDevice maps the device query parameter, defaulting to desktop
func ParseDevice(value string) Device {
	if Device(value) == DeviceMobile {
		return DeviceMobile
	}
	return DeviceDesktop
}
