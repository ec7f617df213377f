package graph

import (
	"github.com/graphql-go/graphql"

	"go-storefront/models"
)

// NewSchema builds the executable GraphQL schema around a root resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.User).ID.Hex(), nil
				},
			},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"permissions": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
			},
		},
	})

	itemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Item",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Item).ID.Hex(), nil
				},
			},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"image":       &graphql.Field{Type: graphql.String},
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Item).UserID.Hex(), nil
				},
			},
		},
	})

	cartItemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CartItem",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.CartItem).ID.Hex(), nil
				},
			},
			"quantity": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"item":     &graphql.Field{Type: itemType},
		},
	})

	orderItemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderItem",
		Fields: graphql.Fields{
			"itemId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(models.OrderItem).ItemID.Hex(), nil
				},
			},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"image":       &graphql.Field{Type: graphql.String},
			"quantity":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	orderType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Order).ID.Hex(), nil
				},
			},
			"items": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderItemType)))},
			"total": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"chargeId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Order).ChargeID, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*models.Order).CreatedAt, nil
				},
			},
		},
	})

	messageType := graphql.NewObject(graphql.ObjectConfig{
		Name: "SuccessMessage",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: userType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Me(p.Context)
				},
			},
			"items": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(itemType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Items(p.Context)
				},
			},
			"item": &graphql.Field{
				Type: itemType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Item(p.Context, stringArg(p, "id"))
				},
			},
			"cart": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(cartItemType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Cart(p.Context)
				},
			},
			"orders": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(orderType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Orders(p.Context)
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Order(p.Context, stringArg(p, "id"))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Signup(p.Context, SignupInput{
						Email:    stringArg(p, "email"),
						Password: stringArg(p, "password"),
						Name:     stringArg(p, "name"),
					})
				},
			},
			"signin": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Signin(p.Context, stringArg(p, "email"), stringArg(p, "password"))
				},
			},
			"signout": &graphql.Field{
				Type: graphql.NewNonNull(messageType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Signout(p.Context), nil
				},
			},
			"requestReset": &graphql.Field{
				Type: graphql.NewNonNull(messageType),
				Args: graphql.FieldConfigArgument{
					"email": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.RequestReset(p.Context, stringArg(p, "email"))
				},
			},
			"resetPassword": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"resetToken":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"confirmPassword": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.ResetPassword(p.Context,
						stringArg(p, "resetToken"),
						stringArg(p, "password"),
						stringArg(p, "confirmPassword"))
				},
			},
			"updatePermissions": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"userId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"permissions": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.UpdatePermissions(p.Context, stringArg(p, "userId"), stringListArg(p, "permissions"))
				},
			},
			"createItem": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"price":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"image":       &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.CreateItem(p.Context, CreateItemInput{
						Title:       stringArg(p, "title"),
						Description: stringArg(p, "description"),
						Price:       intArg(p, "price"),
						Image:       stringArg(p, "image"),
					})
				},
			},
			"updateItem": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"title":       &graphql.ArgumentConfig{Type: graphql.String},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"price":       &graphql.ArgumentConfig{Type: graphql.Int},
					"image":       &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.UpdateItem(p.Context, stringArg(p, "id"), models.ItemUpdate{
						Title:       optStringArg(p, "title"),
						Description: optStringArg(p, "description"),
						Price:       optIntArg(p, "price"),
						Image:       optStringArg(p, "image"),
					})
				},
			},
			"deleteItem": &graphql.Field{
				Type: graphql.NewNonNull(itemType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.DeleteItem(p.Context, stringArg(p, "id"))
				},
			},
			"addToCart": &graphql.Field{
				Type: graphql.NewNonNull(cartItemType),
				Args: graphql.FieldConfigArgument{
					"itemId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.AddToCart(p.Context, stringArg(p, "itemId"))
				},
			},
			"removeFromCart": &graphql.Field{
				Type: graphql.NewNonNull(cartItemType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.RemoveFromCart(p.Context, stringArg(p, "id"))
				},
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(orderType),
				Args: graphql.FieldConfigArgument{
					"paymentToken": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.CreateOrder(p.Context, stringArg(p, "paymentToken"))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func stringArg(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

func optStringArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}

func intArg(p graphql.ResolveParams, name string) int64 {
	v, _ := p.Args[name].(int)
	return int64(v)
}

func optIntArg(p graphql.ResolveParams, name string) *int64 {
	if v, ok := p.Args[name].(int); ok {
		v64 := int64(v)
		return &v64
	}
	return nil
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, _ := p.Args[name].([]interface{})
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
