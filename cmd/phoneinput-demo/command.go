package main

import (
	"fmt"

	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/country"
	"github.com/BrandonKowalski/phoneinput/pkg/phoneinput/validate"
	"github.com/spf13/cobra"
)

type demoFlags struct {
	country   string
	number    string
	disabled  bool
	layout    string
	variant   string
	dataset   string
	themeFile string
	fontPath  string
	dark      bool
	cannoli   bool
	accent    uint32
	lang      string
	logPath   string
	logLevel  string
	keypad    string
	grab      bool
	flip      bool
	keypadUI  bool
	audit     bool
}

func newCommand() *cobra.Command {
	var f demoFlags

	cmd := &cobra.Command{
		Use:          "phoneinput-demo",
		Short:        "Try the phone number input in each of its variants",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.country, "country", country.DefaultCode, "starting country (ISO alpha-2, any case)")
	flags.StringVar(&f.number, "number", "", "starting phone number")
	flags.BoolVar(&f.disabled, "disabled", false, "open the widget disabled")
	flags.StringVar(&f.layout, "layout", "", "force a layout for every variant: codeInInput, codeInSelector or codeWithFlag")
	flags.StringVar(&f.variant, "variant", "", "skip the menu and open this variant")
	flags.StringVar(&f.dataset, "dataset", "", "TOML country dataset to use instead of the bundled one")
	flags.StringVar(&f.themeFile, "theme", "", "TOML theme overrides")
	flags.StringVar(&f.fontPath, "font", "", "TTF font for all text")
	flags.BoolVar(&f.dark, "dark", false, "start from the dark theme")
	flags.BoolVar(&f.cannoli, "cannoli", false, "use the Cannoli theme")
	flags.Uint32Var(&f.accent, "accent", 0, "accent color as 0xRRGGBB")
	flags.StringVar(&f.lang, "lang", "", "label language, e.g. de")
	flags.StringVar(&f.logPath, "log-path", "", "log file path")
	flags.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&f.keypad, "keypad", "", "evdev node of a hardware keypad")
	flags.BoolVar(&f.grab, "grab", false, "take exclusive access to the keypad device")
	flags.BoolVar(&f.flip, "flip-face-buttons", false, "map A and B directly instead of the Nintendo layout")
	flags.BoolVar(&f.keypadUI, "show-keypad", false, "open the on-screen keypad with the widget")
	flags.BoolVar(&f.audit, "audit", false, "log dataset calling codes that disagree with the number parser")

	return cmd
}

func run(f demoFlags) error {
	if f.layout != "" {
		if _, ok := phoneinput.ParseLayout(f.layout); !ok {
			return fmt.Errorf("unknown layout %q", f.layout)
		}
	}
	if f.variant != "" {
		if _, ok := findVariant(f.variant); !ok {
			return fmt.Errorf("unknown variant %q", f.variant)
		}
	}

	dir := country.Bundled()
	if f.dataset != "" {
		loaded, err := country.LoadFile(f.dataset)
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		dir = loaded
	}

	if f.logPath != "" {
		phoneinput.SetLogPath(f.logPath)
	}
	phoneinput.SetRawLogLevel(f.logLevel)

	err := phoneinput.Init(phoneinput.Options{
		WindowTitle:          "Phone Input",
		IsCannoli:            f.cannoli,
		DarkTheme:            f.dark,
		PrimaryThemeColorHex: f.accent,
		ThemeFile:            f.themeFile,
		FontPath:             f.fontPath,
		Language:             f.lang,
		KeypadDevice:         f.keypad,
		GrabKeypad:           f.grab,
		FlipFaceButtons:      f.flip,
	})
	if err != nil {
		return err
	}
	defer phoneinput.Close()

	logger := phoneinput.GetLogger()
	logger.Info("Dataset loaded", "countries", dir.Len(), "source", datasetSource(f.dataset))

	f.country = country.NormalizeCode(f.country)
	if _, err := dir.ByCode(f.country); err != nil {
		logger.Warn("Starting country not in dataset, using the default",
			"country", f.country, "default", dir.Default().Code)
	}

	if f.audit {
		for _, m := range validate.AuditCallingCodes(dir) {
			logger.Warn("Calling code mismatch", "country", m.Record.Code, "dataset", m.Record.CallingCode, "parser", m.Expected)
		}
	}

	return newApp(f, dir).run()
}

func datasetSource(path string) string {
	if path == "" {
		return "bundled"
	}
	return path
}
