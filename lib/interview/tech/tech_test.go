package tech

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run(`sorted deduplicated result check`, func(t *testing.T) {
		result := Extract("I use Python, React and PostgreSQL")
		require.Equal(t, []string{"Postgresql", "Python", "React"}, result)
	})

	t.Run(`case insensitive and deduplicated check`, func(t *testing.T) {
		result := Extract("python Python PYTHON")
		require.Equal(t, []string{"Python"}, result)
	})

	t.Run(`nothing recognized check`, func(t *testing.T) {
		require.Empty(t, Extract("I like gardening and cooking"))
		require.Empty(t, Extract(""))
	})

	t.Run(`substring containment without word boundaries check`, func(t *testing.T) {
		// "go" совпадает внутри "going"
		result := Extract("going to the mongodb meetup")
		require.Equal(t, []string{"Go", "Mongodb"}, result)
	})

	t.Run(`title-cased multiword keywords check`, func(t *testing.T) {
		result := Extract("node.js and vue.js")
		require.Equal(t, []string{"Node.Js", "Vue", "Vue.Js"}, result)
	})

	t.Run(`deterministic for identical input check`, func(t *testing.T) {
		input := "Java, Docker, AWS, Kubernetes, React, MySQL"
		require.Equal(t, Extract(input), Extract(input))
	})
}
