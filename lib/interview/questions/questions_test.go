package questions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run(`two questions per known tech check`, func(t *testing.T) {
		result := Generate([]string{"Python", "React"})
		require.Len(t, result, 4)
		require.Equal(t, questionBank["python"][:2], result[:2])
		require.Equal(t, questionBank["react"][:2], result[2:])
	})

	t.Run(`no more than five questions check`, func(t *testing.T) {
		result := Generate([]string{"Javascript", "Python", "React", "Mysql", "Docker"})
		require.Len(t, result, 5)
	})

	t.Run(`unknown techs are skipped check`, func(t *testing.T) {
		result := Generate([]string{"Postgresql", "Python"})
		require.Len(t, result, 2)
		require.Equal(t, questionBank["python"][:2], result)
	})

	t.Run(`generic fallback check`, func(t *testing.T) {
		expected := questionBank["general"][:3]
		require.Equal(t, expected, Generate(nil))
		require.Equal(t, expected, Generate([]string{"Postgresql", "Oracle"}))
	})

	t.Run(`only first three techs considered check`, func(t *testing.T) {
		// react на четвертой позиции не должен дать вопросов
		result := Generate([]string{"Mysql", "Oracle", "Postgresql", "React"})
		require.Equal(t, questionBank["general"][:3], result)
	})

	t.Run(`deterministic for identical stack check`, func(t *testing.T) {
		stack := []string{"Javascript", "Python", "React"}
		require.Equal(t, Generate(stack), Generate(stack))
	})
}
