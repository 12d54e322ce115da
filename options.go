package logger

// Options is the per-call options bag. Passing it (or a pointer to it) as the
// third Log argument always selects the options-bag interpretation, bypassing
// the map shape heuristic.
//
// Field names mirror the recognized map[string]any bag keys one to one.
type Options struct {
	// Additional is the secondary payload logged after the primary message.
	// A nil value counts as absent unless AlwaysLogAdditional is set.
	Additional any

	// AlwaysLogAdditional emits the additional-data block even when
	// Additional is nil.
	AlwaysLogAdditional bool

	// StringifyAdditional controls JSON serialization of Additional: false
	// or nil logs the value verbatim, true serializes with a two-space
	// indent, and a StringifyConfig (value or pointer) customizes the
	// replacer and indent width.
	StringifyAdditional any

	// ThrowErr selects the error returned after logging: false or nil never
	// errors; true suppresses the primary line and returns an error carrying
	// the full prefixed message; a string logs normally and returns an error
	// whose message is the prefixed string; an error value logs normally and
	// is returned with its message prefixed (errors.Is still matches it).
	ThrowErr any

	// AlertMsg raises a user-visible alert describing the log entry when an
	// alert hook is available; without one the alert is skipped.
	AlertMsg bool
}

// StringifyConfig customizes JSON serialization of the additional payload.
type StringifyConfig struct {
	// Replacer rewrites each value before serialization. It is applied to
	// the payload itself (key ""), then to every map entry and slice element
	// it returns, keyed by map key or decimal index.
	Replacer func(key string, value any) any

	// Space sets the indent width in spaces. Zero and negative values select
	// the default of 2.
	Space int
}

// The five recognized option-bag keys. A map[string]any third argument is an
// options bag only when non-empty and keyed entirely from this set.
const (
	optKeyAdditional          = "additional"
	optKeyAlwaysLogAdditional = "alwaysLogAdditional"
	optKeyStringifyAdditional = "stringifyAdditional"
	optKeyThrowErr            = "throwErr"
	optKeyAlertMsg            = "alertMsg"
)

func isOptionKey(key string) bool {
	switch key {
	case optKeyAdditional, optKeyAlwaysLogAdditional, optKeyStringifyAdditional,
		optKeyThrowErr, optKeyAlertMsg:
		return true
	}
	return false
}

// resolvedCall is the resolver's output: an unambiguous view of one logging
// call, built fresh per call and discarded after dispatch.
type resolvedCall struct {
	additional          any
	alwaysLogAdditional bool
	stringify           *StringifyConfig
	throwErr            any
	alertMsg            bool
}

// resolveCall decides which trailing argument (if any) is the additional-data
// payload and which is the options bag. It is total: every argument shape
// resolves to some call, and resolution itself never fails.
func resolveCall(args []any) resolvedCall {
	if len(args) == 0 {
		return resolvedCall{}
	}
	arg3 := args[0]
	switch v := arg3.(type) {
	case Options:
		return resolveOptions(v)
	case *Options:
		if v != nil {
			return resolveOptions(*v)
		}
	case map[string]any:
		if isOptionBag(v) {
			return resolveBag(v)
		}
	}
	// arg3 is the additional payload; arg4, when present, is an options bag
	// whose "additional" entry has no slot left to fill.
	rc := resolvedCall{}
	if len(args) > 1 {
		rc = resolveTrailingBag(args[1])
	}
	rc.additional = arg3
	return rc
}

// isOptionBag reports whether m reads as an options bag: non-empty, with
// every key recognized. An empty map is far more likely to be a deliberate
// empty payload than an accidental empty options bag, so it never matches.
func isOptionBag(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for key := range m {
		if !isOptionKey(key) {
			return false
		}
	}
	return true
}

func resolveOptions(opts Options) resolvedCall {
	return resolvedCall{
		additional:          opts.Additional,
		alwaysLogAdditional: opts.AlwaysLogAdditional,
		stringify:           resolveStringify(opts.StringifyAdditional),
		throwErr:            normalizeThrowErr(opts.ThrowErr),
		alertMsg:            opts.AlertMsg,
	}
}

func resolveBag(m map[string]any) resolvedCall {
	rc := resolvedCall{additional: m[optKeyAdditional]}
	if v, ok := m[optKeyAlwaysLogAdditional].(bool); ok {
		rc.alwaysLogAdditional = v
	}
	rc.stringify = resolveStringify(m[optKeyStringifyAdditional])
	rc.throwErr = normalizeThrowErr(m[optKeyThrowErr])
	if v, ok := m[optKeyAlertMsg].(bool); ok {
		rc.alertMsg = v
	}
	return rc
}

// resolveTrailingBag parses the fourth argument. Unlike the third argument it
// is unambiguous by position, so foreign keys are simply ignored rather than
// reclassifying the value, and its "additional" entry is dropped.
func resolveTrailingBag(arg4 any) resolvedCall {
	switch v := arg4.(type) {
	case Options:
		rc := resolveOptions(v)
		rc.additional = nil
		return rc
	case *Options:
		if v != nil {
			rc := resolveOptions(*v)
			rc.additional = nil
			return rc
		}
	case map[string]any:
		rc := resolveBag(v)
		rc.additional = nil
		return rc
	}
	return resolvedCall{}
}

// resolveStringify normalizes the stringifyAdditional option. The result is
// nil (no serialization) or a config with Space already defaulted to 2.
func resolveStringify(v any) *StringifyConfig {
	switch cfg := v.(type) {
	case bool:
		if cfg {
			return &StringifyConfig{Space: 2}
		}
	case StringifyConfig:
		return normalizeStringify(cfg)
	case *StringifyConfig:
		if cfg != nil {
			return normalizeStringify(*cfg)
		}
	case map[string]any:
		out := StringifyConfig{}
		if r, ok := cfg["replacer"].(func(string, any) any); ok {
			out.Replacer = r
		}
		if s, ok := cfg["space"].(int); ok {
			out.Space = s
		}
		return normalizeStringify(out)
	}
	return nil
}

func normalizeStringify(cfg StringifyConfig) *StringifyConfig {
	if cfg.Space <= 0 {
		cfg.Space = 2
	}
	return &cfg
}

// normalizeThrowErr keeps only the recognized throwErr shapes: true, a
// string, or an error. Everything else (including false) means "never".
func normalizeThrowErr(v any) any {
	switch t := v.(type) {
	case bool:
		if t {
			return true
		}
	case string:
		return t
	case error:
		return t
	}
	return nil
}
