package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	translations    map[string]map[string]string  // [language][key]message
	templates       map[string]*template.Template // [language + "\x00" + key]
	defaultLanguage string
}

// NewService carrega os locales de um diretório; localesDir vazio usa os locales embutidos
func NewService(localesDir, defaultLang string) (*Service, error) {
	if localesDir == "" {
		return NewEmbeddedService(defaultLang)
	}
	if _, err := os.Stat(localesDir); err != nil {
		return nil, fmt.Errorf("locales directory %s: %w", localesDir, err)
	}
	return NewServiceFS(os.DirFS(localesDir), defaultLang)
}

// NewEmbeddedService usa os arquivos de locales compilados no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, err
	}
	return NewServiceFS(sub, defaultLang)
}

// NewServiceFS carrega todos os arquivos <lang>.json da raiz de fsys
func NewServiceFS(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		templates:       make(map[string]*template.Template),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		// Mensagens com {{ }} são compiladas uma única vez
		for key, message := range messages {
			if !strings.Contains(message, "{{") {
				continue
			}
			tmpl, err := template.New(key).Option("missingkey=zero").Parse(message)
			if err != nil {
				return nil, fmt.Errorf("invalid template %s in %s: %w", key, file, err)
			}
			s.templates[templateKey(lang, key)] = tmpl
		}

		s.translations[lang] = messages
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func templateKey(lang, key string) string {
	return lang + "\x00" + key
}

// T traduz uma chave para o idioma especificado.
// Parâmetros são interpolados como template Go ({{.Name}}, {{.Roles}}, ...).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.translations[lang][key]; !ok {
		lang = s.defaultLanguage
	}

	message, ok := s.translations[lang][key]
	if !ok {
		return key
	}

	tmpl, ok := s.templates[templateKey(lang, key)]
	if !ok || len(params) == 0 {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

// Has indica se a chave existe no idioma padrão
func (s *Service) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[s.defaultLanguage][key]
	return ok
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados, ordenados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.translations[lang]
	return ok
}
