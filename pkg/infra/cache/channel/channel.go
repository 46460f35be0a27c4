package channel

type Channel string

const NotificationsChannel Channel = "fanz:notifications"

func (c Channel) String() string {
	return string(c)
}
