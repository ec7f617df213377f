package graph

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, schema graphql.Schema, ctx context.Context, query string) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
		Context:       ctx,
	})
}

func TestSchemaSignupAndQuery(t *testing.T) {
	r, _, _, _ := newTestResolver(t)
	schema, err := NewSchema(r)
	require.NoError(t, err)

	result := execute(t, schema, context.Background(), `
		mutation {
			signup(email: "Wes@Example.com", password: "secret123", name: "Wes") {
				id
				email
				permissions
			}
		}
	`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	signup := data["signup"].(map[string]interface{})
	assert.Equal(t, "wes@example.com", signup["email"])
	assert.NotEmpty(t, signup["id"])
	assert.Equal(t, []interface{}{"USER"}, signup["permissions"])
}

func TestSchemaSurfacesTypedErrors(t *testing.T) {
	r, _, _, _ := newTestResolver(t)
	schema, err := NewSchema(r)
	require.NoError(t, err)

	result := execute(t, schema, context.Background(), `
		mutation {
			signin(email: "ghost@example.com", password: "whatever") { id }
		}
	`)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "no such user found for email ghost@example.com")
}

func TestSchemaCartFlow(t *testing.T) {
	r, store, _, _ := newTestResolver(t)
	schema, err := NewSchema(r)
	require.NoError(t, err)

	user := seedUser(t, store, "shopper@example.com")
	item := seedItem(t, store, user, "Hat", 500)
	ctx := authedCtx(user)

	result := execute(t, schema, ctx, `
		mutation {
			addToCart(itemId: "`+item.ID.Hex()+`") {
				quantity
				item { title price }
			}
		}
	`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	line := data["addToCart"].(map[string]interface{})
	assert.Equal(t, 1, line["quantity"])

	itemData := line["item"].(map[string]interface{})
	assert.Equal(t, "Hat", itemData["title"])
	assert.Equal(t, 500, itemData["price"])

	result = execute(t, schema, ctx, `query { cart { quantity } }`)
	require.Empty(t, result.Errors)
	cart := result.Data.(map[string]interface{})["cart"].([]interface{})
	assert.Len(t, cart, 1)
}

func TestSchemaRequiresAuthForCart(t *testing.T) {
	r, _, _, _ := newTestResolver(t)
	schema, err := NewSchema(r)
	require.NoError(t, err)

	result := execute(t, schema, context.Background(), `query { cart { quantity } }`)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "you must be logged in")
}
