package xmlpatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

const colorsXML = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <color name="primary">#6200EE</color>
</resources>
`

func TestUpsertValueInsertsBeforeRootClose(t *testing.T) {
	out, err := UpsertValue([]byte(colorsXML), "resources", "color", "splash_color", "#112233")
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <color name="primary">#6200EE</color>
    <color name="splash_color">#112233</color>
</resources>
`
	assert.Equal(t, want, string(out))
}

func TestUpsertValueReplacesInPlace(t *testing.T) {
	src := `<resources>
    <color name="splash_color" tools:ignore="UnusedResources">#FFFFFF</color>
    <color name="primary">#6200EE</color>
</resources>`

	out, err := UpsertValue([]byte(src), "resources", "color", "splash_color", "#112233")
	require.NoError(t, err)

	want := strings.Replace(src, "#FFFFFF", "#112233", 1)
	assert.Equal(t, want, string(out))
}

func TestUpsertValueKeepsAttributesOfSelfClosingEntry(t *testing.T) {
	src := "<resources>\n    <color name=\"splash_color\" tools:ignore=\"UnusedResources\" />\n</resources>\n"

	out, err := UpsertValue([]byte(src), "resources", "color", "splash_color", "#112233")
	require.NoError(t, err)
	assert.Equal(t, "<resources>\n    <color name=\"splash_color\" tools:ignore=\"UnusedResources\">#112233</color>\n</resources>\n", string(out))

	again, err := UpsertValue(out, "resources", "color", "splash_color", "#112233")
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestCRLFLineEndingsArePreserved(t *testing.T) {
	crlf := func(s string) []byte { return []byte(strings.ReplaceAll(s, "\n", "\r\n")) }

	tests := []struct {
		name  string
		apply func() ([]byte, error)
	}{
		{"value", func() ([]byte, error) {
			return UpsertValue(crlf(colorsXML), "resources", "color", "splash_color", "#112233")
		}},
		{"element", func() ([]byte, error) {
			return UpsertElement(crlf(colorsXML), "resources", "name",
				NewNode("style", "name", "SplashTheme").WithChildren(NewNode("item", "name", "a").WithText("b")))
		}},
		{"children", func() ([]byte, error) {
			return UpsertChildren(crlf(manifestXML), mainActivity, "android:name",
				metaData("splashgen.background", "@color/splash_color"))
		}},
		{"plist", func() ([]byte, error) {
			return SetPlistString(crlf(PlistSkeleton), "UILaunchStoryboardName", "SplashScreen")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.apply()
			require.NoError(t, err)
			s := string(out)
			assert.Equal(t, strings.Count(s, "\n"), strings.Count(s, "\r\n"), "mixed line endings: %q", s)
			assert.NotContains(t, s, "\r\r\n")
		})
	}

	out, err := UpsertValue(crlf(colorsXML), "resources", "color", "splash_color", "#112233")
	require.NoError(t, err)
	want := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <color name="primary">#6200EE</color>
    <color name="splash_color">#112233</color>
</resources>
`
	assert.Equal(t, string(crlf(want)), string(out))
}

func TestUpsertValueIsIdempotent(t *testing.T) {
	once, err := UpsertValue([]byte(colorsXML), "resources", "color", "splash_color", "#112233")
	require.NoError(t, err)
	twice, err := UpsertValue(once, "resources", "color", "splash_color", "#112233")
	require.NoError(t, err)

	assert.Equal(t, string(once), string(twice))
	assert.Equal(t, 1, strings.Count(string(twice), `name="splash_color"`))
}

func TestUpsertValueIntoEmptyRoots(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "skeleton",
			src:  ResourcesSkeleton,
			want: `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <color name="splash_color">#112233</color>
</resources>
`,
		},
		{
			name: "self-closing root",
			src:  "<resources/>\n",
			want: "<resources>\n    <color name=\"splash_color\">#112233</color>\n</resources>\n",
		},
		{
			name: "root on one line",
			src:  "<resources></resources>\n",
			want: "<resources>\n    <color name=\"splash_color\">#112233</color>\n</resources>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := UpsertValue([]byte(tt.src), "resources", "color", "splash_color", "#112233")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))

			again, err := UpsertValue(out, "resources", "color", "splash_color", "#112233")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(again))
		})
	}
}

func TestUpsertValueWithoutAnchor(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing root close", src: "<?xml version=\"1.0\"?>\n<resources>\n    <color name=\"a\">#FFFFFF</color>\n"},
		{name: "wrong root", src: "<manifest>\n</manifest>\n"},
		{name: "no root", src: "<?xml version=\"1.0\"?>\n<!-- empty -->\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := UpsertValue([]byte(tt.src), "resources", "color", "splash_color", "#112233")
			require.Error(t, err)
			assert.ErrorIs(t, err, splasherrors.ErrPatchAnchorNotFound)
			assert.True(t, splasherrors.IsWarning(err))
			assert.Nil(t, out)
		})
	}
}

func TestUpsertValueMalformed(t *testing.T) {
	_, err := UpsertValue([]byte("<resources>\n  <color name=\"a\">#FFF</colour>\n</resources>"), "resources", "color", "a", "#000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, splasherrors.ErrMalformedResource)
}

const stylesXML = `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <style name="AppTheme" parent="Theme.AppCompat.Light.NoActionBar">
        <item name="colorPrimary">@color/primary</item>
    </style>
    <style name="SplashTheme" parent="Theme.SplashScreen">
        <item name="windowSplashScreenBackground">@color/old</item>
        <item name="postSplashScreenTheme">@style/AppTheme</item>
    </style>
    <style name="Other">
        <item name="android:windowBackground">@null</item>
    </style>
</resources>
`

func splashTheme() Node {
	return NewNode("style", "name", "SplashTheme", "parent", "Theme.SplashScreen").WithChildren(
		NewNode("item", "name", "windowSplashScreenBackground").WithText("@color/splash_color"),
		NewNode("item", "name", "postSplashScreenTheme").WithText("@style/AppTheme"),
	)
}

func TestUpsertElementReplacesOnlyNamedBlock(t *testing.T) {
	out, err := UpsertElement([]byte(stylesXML), "resources", "name", splashTheme())
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <style name="AppTheme" parent="Theme.AppCompat.Light.NoActionBar">
        <item name="colorPrimary">@color/primary</item>
    </style>
    <style name="SplashTheme" parent="Theme.SplashScreen">
        <item name="windowSplashScreenBackground">@color/splash_color</item>
        <item name="postSplashScreenTheme">@style/AppTheme</item>
    </style>
    <style name="Other">
        <item name="android:windowBackground">@null</item>
    </style>
</resources>
`
	assert.Equal(t, want, string(out))

	// The neighbouring blocks are byte-for-byte intact.
	appTheme := stylesXML[strings.Index(stylesXML, `    <style name="AppTheme"`):strings.Index(stylesXML, `    <style name="SplashTheme"`)]
	other := stylesXML[strings.Index(stylesXML, `    <style name="Other"`):]
	assert.Contains(t, string(out), appTheme)
	assert.True(t, strings.HasSuffix(string(out), other))
}

func TestUpsertElementInsertsAndIsIdempotent(t *testing.T) {
	src := `<resources>
  <style name="AppTheme">
    <item name="colorPrimary">@color/primary</item>
  </style>
</resources>
`
	once, err := UpsertElement([]byte(src), "resources", "name", splashTheme())
	require.NoError(t, err)

	want := `<resources>
  <style name="AppTheme">
    <item name="colorPrimary">@color/primary</item>
  </style>
  <style name="SplashTheme" parent="Theme.SplashScreen">
    <item name="windowSplashScreenBackground">@color/splash_color</item>
    <item name="postSplashScreenTheme">@style/AppTheme</item>
  </style>
</resources>
`
	assert.Equal(t, want, string(once))

	twice, err := UpsertElement(once, "resources", "name", splashTheme())
	require.NoError(t, err)
	assert.Equal(t, string(once), string(twice))
}

const manifestXML = `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android">
    <application android:label="demo">
        <activity
            android:name="com.example.demo.MainActivity"
            android:exported="true">
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
            </intent-filter>
        </activity>
    </application>
</manifest>
`

var mainActivity = Match{Tag: "activity", Attr: "android:name", Value: ".MainActivity"}

func metaData(name, resource string) Node {
	return NewNode("meta-data", "android:name", name, "android:resource", resource)
}

func TestUpsertChildrenInsertsAfterOpenTag(t *testing.T) {
	out, err := UpsertChildren([]byte(manifestXML), mainActivity, "android:name",
		metaData("splashgen.background", "@color/splash_color"),
		metaData("splashgen.image", "@drawable/splash_image"),
	)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="http://schemas.android.com/apk/res/android">
    <application android:label="demo">
        <activity
            android:name="com.example.demo.MainActivity"
            android:exported="true">
            <meta-data android:name="splashgen.background" android:resource="@color/splash_color" />
            <meta-data android:name="splashgen.image" android:resource="@drawable/splash_image" />
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
            </intent-filter>
        </activity>
    </application>
</manifest>
`
	assert.Equal(t, want, string(out))

	again, err := UpsertChildren(out, mainActivity, "android:name",
		metaData("splashgen.background", "@color/splash_color"),
		metaData("splashgen.image", "@drawable/splash_image"),
	)
	require.NoError(t, err)
	assert.Equal(t, want, string(again))
}

func TestUpsertChildrenUpdatesExistingEntry(t *testing.T) {
	out, err := UpsertChildren([]byte(manifestXML), mainActivity, "android:name",
		metaData("splashgen.image", "@drawable/old"))
	require.NoError(t, err)

	out, err = UpsertChildren(out, mainActivity, "android:name",
		metaData("splashgen.background", "@color/splash_color"),
		metaData("splashgen.image", "@drawable/splash_image"))
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "@drawable/old")
	assert.Equal(t, 1, strings.Count(s, "splashgen.image"))
	assert.Equal(t, 1, strings.Count(s, "splashgen.background"))
}

func TestUpsertChildrenExpandsSelfClosingAnchor(t *testing.T) {
	src := `<manifest>
    <application>
        <activity android:name=".MainActivity" />
    </application>
</manifest>
`
	out, err := UpsertChildren([]byte(src), mainActivity, "android:name",
		metaData("splashgen.background", "@color/splash_color"),
		metaData("splashgen.image", "@drawable/splash_image"))
	require.NoError(t, err)

	want := `<manifest>
    <application>
        <activity android:name=".MainActivity">
            <meta-data android:name="splashgen.background" android:resource="@color/splash_color" />
            <meta-data android:name="splashgen.image" android:resource="@drawable/splash_image" />
        </activity>
    </application>
</manifest>
`
	assert.Equal(t, want, string(out))
}

func TestUpsertChildrenWithoutAnchor(t *testing.T) {
	src := `<manifest>
    <application>
        <activity android:name=".SettingsActivity" />
    </application>
</manifest>
`
	_, err := UpsertChildren([]byte(src), mainActivity, "android:name", metaData("splashgen.image", "@drawable/splash_image"))
	require.Error(t, err)
	assert.ErrorIs(t, err, splasherrors.ErrPatchAnchorNotFound)
}

func TestRemoveChildren(t *testing.T) {
	withEntries, err := UpsertChildren([]byte(manifestXML), mainActivity, "android:name",
		metaData("splashgen.background", "@color/splash_color"),
		metaData("splashgen.branding", "@drawable/splash_branding"))
	require.NoError(t, err)

	out, err := RemoveChildren(withEntries, mainActivity,
		Match{Tag: "meta-data", Attr: "android:name", Value: "splashgen.branding"},
		Match{Tag: "meta-data", Attr: "android:name", Value: "splashgen.animation"})
	require.NoError(t, err)

	want, err := UpsertChildren([]byte(manifestXML), mainActivity, "android:name",
		metaData("splashgen.background", "@color/splash_color"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(out))
}

func TestMatchRelativeClassName(t *testing.T) {
	el := &Element{Name: "activity", Attrs: []Attr{{Name: "android:name", Value: "com.example.MainActivity"}}}

	assert.True(t, Match{Tag: "activity", Attr: "android:name", Value: ".MainActivity"}.Matches(el))
	assert.True(t, Match{Tag: "activity", Attr: "android:name", Value: "com.example.MainActivity"}.Matches(el))
	assert.False(t, Match{Tag: "activity", Attr: "android:name", Value: "MainActivity"}.Matches(el))
	assert.False(t, Match{Tag: "activity", Attr: "android:name", Value: ".OtherActivity"}.Matches(el))
	assert.True(t, Match{Tag: "activity"}.Matches(el))
}

func TestParseSpans(t *testing.T) {
	src := []byte(`<a x="1"><b/><c>text</c></a>`)
	doc, err := Parse(src)
	require.NoError(t, err)

	root := doc.Root
	assert.Equal(t, `<a x="1">`, string(src[root.Start:root.OpenEnd]))
	assert.Equal(t, `</a>`, string(src[root.CloseStart:root.End]))
	require.Len(t, root.Children, 2)

	b := root.Children[0]
	assert.True(t, b.SelfClosing)
	assert.Equal(t, `<b/>`, string(src[b.Start:b.End]))

	c := root.Children[1]
	assert.False(t, c.SelfClosing)
	assert.Equal(t, "text", c.Text)
	assert.Equal(t, `<c>text</c>`, string(src[c.Start:c.End]))
}

func TestRenderEscapes(t *testing.T) {
	n := NewNode("string", "name", `a"b`).WithText("x < y & z")
	assert.Equal(t, `<string name="a&quot;b">x &lt; y &amp; z</string>`, n.Render("", "  "))
}
