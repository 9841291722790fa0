package config

// Defaults for optional settings.
const (
	DefaultColor = "#FFFFFF"

	DefaultAndroidProjectDir = "android/app/src/main"
	DefaultMainActivity      = ".MainActivity"
	DefaultPostSplashTheme   = "AppTheme"

	DefaultIOSProjectDir = "ios/Runner"
	DefaultStoryboard    = "SplashScreen"
	DefaultInfoPlist     = "Info.plist"
)

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = DefaultColor
	}
	if c.ColorDark == "" {
		c.ColorDark = c.Color
	}

	// The dark icon background follows an explicit light icon background
	// before it falls back to the dark screen color.
	iconBackgroundSet := c.IconBackground != ""
	if !iconBackgroundSet {
		c.IconBackground = c.Color
	}
	if c.IconBackgroundDark == "" {
		if iconBackgroundSet {
			c.IconBackgroundDark = c.IconBackground
		} else {
			c.IconBackgroundDark = c.ColorDark
		}
	}

	if c.Android.ProjectDir == "" {
		c.Android.ProjectDir = DefaultAndroidProjectDir
	}
	if c.Android.MainActivity == "" {
		c.Android.MainActivity = DefaultMainActivity
	}
	if c.Android.PostSplashTheme == "" {
		c.Android.PostSplashTheme = DefaultPostSplashTheme
	}

	if c.IOS.ProjectDir == "" {
		c.IOS.ProjectDir = DefaultIOSProjectDir
	}
	if c.IOS.Storyboard == "" {
		c.IOS.Storyboard = DefaultStoryboard
	}
	if c.IOS.InfoPlist == "" {
		c.IOS.InfoPlist = DefaultInfoPlist
	}
}
