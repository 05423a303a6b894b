package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/thenoetrevino/kanbo/internal/cli/styles"
	"github.com/thenoetrevino/kanbo/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
// In JSON mode the error envelope goes to stdout so scripts read one stream.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint renders the result shapes commands return; anything else
// falls back to its default formatting.
func (f *OutputFormatter) prettyPrint(data any) error {
	switch v := data.(type) {
	case *models.Board:
		fmt.Println(styles.BoardCard(*v, nil))
	case models.Board:
		fmt.Println(styles.BoardCard(v, nil))
	case *models.Task:
		fmt.Println(styles.TaskCard(*v))
	case models.Task:
		fmt.Println(styles.TaskCard(v))
	case models.UserResponse:
		printFields(map[string]string{"ID": v.ID, "Name": v.Name, "Login": v.Login})
	case models.User:
		printFields(map[string]string{"ID": v.UserID, "Name": v.UserName, "Login": v.Login})
	case map[string]string:
		printFields(v)
	case map[string]bool:
		fields := make(map[string]string, len(v))
		for k, b := range v {
			fields[k] = strconv.FormatBool(b)
		}
		printFields(fields)
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}

// printFields prints one "Label: value" line per key, sorted by key
func printFields(fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(styles.Field(k, fields[k]))
	}
}
