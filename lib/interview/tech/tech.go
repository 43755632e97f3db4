package tech

import (
	"sort"
	"strings"
	"unicode"
)

// словарь технологий по категориям, категория в результат не попадает
var techKeywords = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "csharp",
		"php", "ruby", "go", "golang", "rust", "kotlin", "swift", "scala",
		"dart", "elixir", "haskell", "clojure",
	},
	"frontend_frameworks": {
		"react", "angular", "vue", "vue.js", "svelte", "ember", "backbone",
		"jquery", "bootstrap", "tailwind", "material-ui", "next.js", "nuxt",
		"gatsby", "alpine.js",
	},
	"backend_frameworks": {
		"django", "flask", "fastapi", "spring", "spring boot", "express",
		"node.js", "laravel", "symfony", "rails", "sinatra", "gin", "echo",
		"asp.net", "nest.js",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
		"sql server", "cassandra", "elasticsearch", "firebase", "dynamodb",
		"supabase", "planetscale",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
		"vercel", "netlify", "railway", "render",
	},
	"devops_tools": {
		"docker", "kubernetes", "jenkins", "gitlab ci", "github actions",
		"terraform", "ansible", "prometheus", "grafana",
	},
}

// Extract распознает технологии в свободном тексте кандидата.
// Поиск подстрокой без границ слов ("go" совпадет внутри любого слова).
// Результат - уникальный, лексикографически отсортированный список.
func Extract(userInput string) []string {
	userLower := strings.ToLower(userInput)
	found := map[string]struct{}{}
	for _, keywords := range techKeywords {
		for _, keyword := range keywords {
			if strings.Contains(userLower, keyword) {
				found[titleCase(keyword)] = struct{}{}
			}
		}
	}
	result := make([]string, 0, len(found))
	for name := range found {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// titleCase поднимает регистр первой буквы каждого слова ("node.js" -> "Node.Js")
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
			continue
		}
		prevLetter = false
	}
	return string(out)
}
