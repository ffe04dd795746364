package account

import (
	"context"
	"errors"

	"radiology-workflow-api/keycloak"
)

// KeycloakStore is the signer directory: the accounts that can appear in the
// "Report Signed By" field, kept in Keycloak.
type KeycloakStore struct {
	kc    *keycloak.KeycloakConfig
	realm string
}

func NewKeycloakStore(kc *keycloak.KeycloakConfig, realm string) *KeycloakStore {
	return &KeycloakStore{
		kc:    kc,
		realm: realm,
	}
}

func (store *KeycloakStore) getKeycloakSession() (*keycloak.KeycloakSession, error) {
	kc := store.kc.NewKeycloakClient()
	t, err := store.kc.NewKeycloakToken(kc)
	if err != nil {
		return nil, err
	}

	return &keycloak.KeycloakSession{
		Realm:  store.realm,
		Token:  t,
		Client: kc,
	}, nil
}

func (store *KeycloakStore) GetAccounts(username string) ([]*keycloak.UserModel, error) {
	ks, err := store.getKeycloakSession()
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	users, err := ks.GetUsers(username, ctx)
	if err != nil {
		return nil, err
	}

	data := make([]*keycloak.UserModel, 0)
	for _, user := range users {
		item, err := ks.GetUserDetail(user, ctx)
		if err != nil {
			return nil, err
		}
		data = append(data, item)
	}

	return data, nil
}

func (store *KeycloakStore) GetAccountsAsMap(username string) (map[string]*keycloak.UserModel, error) {
	accounts, err := store.GetAccounts(username)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, errors.New("Data is empty")
	}

	ret := make(map[string]*keycloak.UserModel)
	for i := range accounts {
		ret[accounts[i].ID] = accounts[i]
	}
	return ret, nil
}
