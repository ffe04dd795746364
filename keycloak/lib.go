package keycloak

import (
	"context"
	"encoding/json"

	"github.com/Nerzal/gocloak/v7"
)

type JWTKeys struct {
	Keys []struct {
		Kid     string   `json:"kid"`
		Kty     string   `json:"kty"`
		Alg     string   `json:"alg"`
		Use     string   `json:"use"`
		N       string   `json:"n"`
		E       string   `json:"e"`
		X5C     []string `json:"x5c"`
		X5T     string   `json:"x5t"`
		X5TS256 string   `json:"x5t#S256"`
	} `json:"keys"`
	Realm           string `json:"realm"`
	PublicKey       string `json:"public_key"`
	TokenService    string `json:"token-service"`
	AccountService  string `json:"account-service"`
	TokensNotBefore int    `json:"tokens-not-before"`
}

func (jwtKeys *JWTKeys) String() string {
	b, _ := json.Marshal(jwtKeys)
	return string(b)
}

type KeycloakConfig struct {
	MasterRealm   string
	AdminUsername string
	AdminPassword string
	KeycloakURI   string
}

// UserModel is the slim account view this service needs: enough to resolve
// signer display names and roles.
type UserModel struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

func (c *KeycloakConfig) NewKeycloakClient() gocloak.GoCloak {
	return gocloak.NewClient(c.KeycloakURI)
}

func (c *KeycloakConfig) NewKeycloakToken(client gocloak.GoCloak) (*gocloak.JWT, error) {
	ctx := context.Background()
	return client.LoginAdmin(ctx, c.AdminUsername, c.AdminPassword, c.MasterRealm)
}

type KeycloakSession struct {
	Realm  string
	Token  *gocloak.JWT
	Client gocloak.GoCloak
}

func (s *KeycloakSession) GetUsers(username string, ctx context.Context) ([]*gocloak.User, error) {
	params := gocloak.GetUsersParams{}
	if username != "" {
		params.Username = &username
	}
	return s.Client.GetUsers(ctx, s.Token.AccessToken, s.Realm, params)
}

func (s *KeycloakSession) GetUserDetail(user *gocloak.User, ctx context.Context) (*UserModel, error) {
	model := &UserModel{
		Roles: make([]string, 0),
	}
	if user.ID != nil {
		model.ID = *user.ID
	}
	if user.Username != nil {
		model.Username = *user.Username
	}

	roles, err := s.Client.GetRealmRolesByUserID(ctx, s.Token.AccessToken, s.Realm, model.ID)
	if err != nil {
		return nil, err
	}
	for _, role := range roles {
		if role.Name != nil {
			model.Roles = append(model.Roles, *role.Name)
		}
	}

	return model, nil
}
