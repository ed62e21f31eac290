package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// LangEnv overrides the detected system language.
const LangEnv = "ZENTIME_LANG"

var lang string

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Lap": {
		"pt": "Volta",
		"es": "Vuelta",
		"ru": "Круг",
	},
	"Reset": {
		"pt": "Zerar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Resume": {
		"pt": "Continuar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Laps": {
		"pt": "Voltas",
		"es": "Vueltas",
		"ru": "Круги",
	},
	"Total": {
		"pt": "Total",
		"es": "Total",
		"ru": "Всего",
	},
	"%d recorded": {
		"pt": "%d registradas",
		"es": "%d registradas",
		"ru": "записано: %d",
	},
	"Help": {
		"pt": "Ajuda",
		"es": "Ayuda",
		"ru": "Справка",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
}

func init() {
	lang = detectLang(os.Getenv, locale.GetLocales)
	log.Printf("Language set to: %s", lang)
}

func detectLang(getenv func(string) string, getLocales func() ([]string, error)) string {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(getenv(LangEnv)); forcedLang != "" {
		log.Printf("%s is set to: '%s'", LangEnv, forcedLang)
		return forcedLang
	}

	log.Printf("%s is not set, detecting from system locale.", LangEnv)
	userLocales, err := getLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		return "en"
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		return "en"
	}

	userLocale := userLocales[0]
	log.Printf("Detected user locale: %s", userLocale)
	for _, supported := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(userLocale, supported) {
			return supported
		}
	}
	return "en"
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}

// SetLang forces the language used by T.
func SetLang(l string) {
	lang = l
}
