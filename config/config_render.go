package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/0xPolygon/obridge/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

var (
	ErrCycleVars                 = fmt.Errorf("cycle vars")
	ErrMissingVars               = fmt.Errorf("missing vars")
	ErrUnsupportedConfigFileType = fmt.Errorf("unsupported config file type")

	// A={{B}} is not valid TOML, it is turned into A="{{B:int}}" before parsing
	unquotedVarRe = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	quotedVarRe   = regexp.MustCompile(`=\s*\"\{\{([^}:]+:int)\}\}\"`)
	typeMarkRe    = regexp.MustCompile(`\{\{([^}:]+:int)\}\}`)
)

// FileData is the content of one config source, in TOML
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges config sources and resolves the {{Var}} indirections between their values
type ConfigRender struct {
	// Lowest priority first: defaults, then the user files
	FilesData []FileData
	// LookupEnvFunc resolves environment variables, typically os.LookupEnv
	LookupEnvFunc     func(key string) (string, bool)
	EnvironmentPrefix string
}

func NewConfigRender(filesData []FileData, environmentPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData:         filesData,
		LookupEnvFunc:     os.LookupEnv,
		EnvironmentPrefix: environmentPrefix,
	}
}

// Render merges all the files and then resolves the vars of the result
func (c *ConfigRender) Render() (string, error) {
	mergedData, err := c.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return c.ResolveVars(mergedData)
}

// Merge loads the files in order, a later file overrides the keys of the previous ones
func (c *ConfigRender) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range c.FilesData {
		dataToml := quoteVars(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(dataToml)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err:%v.FileData: %v", data.Name, err, dataToml)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return RemoveQuotesForVars(string(marshaled)), nil
}

// ResolveVars replaces every var with the value of the key it names or with the environment
// variable PREFIX_<key>, which takes precedence
func (c *ConfigRender) ResolveVars(fullConfigData string) (string, error) {
	// vars are only read here, values pointing to another var keep the "{{tag}}" form
	tpl, valuesDefined, err := c.readTemplateAndDefinedValues(fullConfigData)
	if err != nil {
		return "", err
	}
	rendered := RemoveTypeMarks(c.executeTemplate(tpl, valuesDefined, true))
	// a var naming no key at all is missing, not part of a cycle
	unresolved := c.GetUnresolvedVars(tpl, valuesDefined, true)
	if len(unresolved) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", unresolved, ErrMissingVars)
	}
	finalConfigData, err := c.ResolveCycle(rendered)
	if err != nil {
		return fullConfigData, err
	}
	return finalConfigData, nil
}

// ResolveCycle renders the data again until no var is left. A step that does not reduce the
// number of vars means they point to each other (A={{B}} and B={{A}})
func (c *ConfigRender) ResolveCycle(partialResolvedConfigData string) (string, error) {
	tmpData := RemoveQuotesForVars(partialResolvedConfigData)
	pendingVars := c.GetVars(tmpData)
	if len(pendingVars) == 0 {
		return partialResolvedConfigData, nil
	}
	log.Debugf("ResolveCycle: pending vars: %v", pendingVars)
	previousData := tmpData
	for len(pendingVars) > 0 {
		previousVars := pendingVars
		tpl, valuesDefined, err := c.readTemplateAndDefinedValues(previousData)
		if err != nil {
			log.Errorf("resolveCycle: fails readTemplateAndDefinedValues. Err: %v. Data:%s", err, previousData)
			return "", fmt.Errorf("fails to read template ResolveCycle. Err: %w", err)
		}
		tmpData = RemoveQuotesForVars(c.executeTemplate(tpl, valuesDefined, true))
		tmpData = RemoveTypeMarks(tmpData)

		pendingVars = c.GetVars(tmpData)
		if len(pendingVars) == len(previousVars) {
			return partialResolvedConfigData, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pendingVars, ErrCycleVars)
		}
		previousData = tmpData
	}
	return previousData, nil
}

// readTemplateAndDefinedValues expects vars in the A={{B}} form, not A="{{B}}"
func (c *ConfigRender) readTemplateAndDefinedValues(data string) (*fasttemplate.Template,
	map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err:%w", err)
	}
	k := koanf.New(".")
	out := quoteVars(data)
	if err := k.Load(rawbytes.Provider([]byte(out)), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing data koanf.Load.Content: %s.  Err: %w", out, err)
	}
	return tpl, k.All(), nil
}

func quoteVars(data string) string {
	return unquotedVarRe.ReplaceAllString(data, `= "{{${1}:int}}"`)
}

// RemoveQuotesForVars turns A="{{B:int}}" back into A={{B}}
func RemoveQuotesForVars(data string) string {
	return quotedVarRe.ReplaceAllStringFunc(data, func(match string) string {
		submatch := quotedVarRe.FindStringSubmatch(match)
		if len(submatch) > 1 {
			return "= " + startTag + strings.Split(submatch[1], ":")[0] + endTag
		}
		return match
	})
}

// RemoveTypeMarks turns {{B:int}} into {{B}}
func RemoveTypeMarks(data string) string {
	return typeMarkRe.ReplaceAllStringFunc(data, func(match string) string {
		submatch := typeMarkRe.FindStringSubmatch(match)
		if len(submatch) > 1 {
			return startTag + strings.Split(submatch[1], ":")[0] + endTag
		}
		return match
	})
}

func (c *ConfigRender) executeTemplate(tpl *fasttemplate.Template,
	data map[string]interface{},
	useEnv bool) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if useEnv {
			if v, ok := c.findTagInEnvironment(tag); ok {
				return w.Write([]byte(v))
			}
		}
		if v, ok := data[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

// GetUnresolvedVars returns the vars of tpl that are neither keys of data nor, when useEnv is
// set, environment variables
func (c *ConfigRender) GetUnresolvedVars(tpl *fasttemplate.Template,
	data map[string]interface{}, useEnv bool) []string {
	var unresolved []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if useEnv {
			if v, ok := c.findTagInEnvironment(tag); ok {
				return w.Write([]byte(v))
			}
		}
		if _, ok := data[tag]; !ok && !contains(unresolved, tag) {
			unresolved = append(unresolved, tag)
		}
		return w.Write([]byte(""))
	})
	return unresolved
}

// GetVars returns the vars in configData
func (c *ConfigRender) GetVars(configData string) []string {
	tpl, err := fasttemplate.NewTemplate(configData, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return w.Write([]byte(""))
	})
	return vars
}

func (c *ConfigRender) findTagInEnvironment(tag string) (string, bool) {
	envTag := c.EnvironmentPrefix + "_" + strings.ReplaceAll(tag, ".", "_")
	return c.LookupEnvFunc(envTag)
}

func contains(vars []string, search string) bool {
	for _, v := range vars {
		if v == search {
			return true
		}
	}
	return false
}

func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := tomlv2.Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
