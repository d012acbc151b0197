package lifecycle

// Token is the string key identifying which lifecycle moment a listener
// registration applies to.
type Token string

// Engine-level tokens. These cover the full set of lifecycle moments a
// persistence engine may expose. Only a subset is bound to a phase this
// dispatcher fires; the rest (session-level moments such as flush or evict)
// are accepted at registration but never dispatched here.
const (
	TokenAutoFlush             Token = "auto-flush"
	TokenMerge                 Token = "merge"
	TokenCreate                Token = "create"
	TokenCreateOnFlush         Token = "create-onflush"
	TokenDelete                Token = "delete"
	TokenDirtyCheck            Token = "dirty-check"
	TokenEvict                 Token = "evict"
	TokenFlush                 Token = "flush"
	TokenFlushEntity           Token = "flush-entity"
	TokenLoad                  Token = "load"
	TokenLoadCollection        Token = "load-collection"
	TokenLock                  Token = "lock"
	TokenRefresh               Token = "refresh"
	TokenReplicate             Token = "replicate"
	TokenSaveUpdate            Token = "save-update"
	TokenSave                  Token = "save"
	TokenUpdate                Token = "update"
	TokenPreLoad               Token = "pre-load"
	TokenPreUpdate             Token = "pre-update"
	TokenPreDelete             Token = "pre-delete"
	TokenPreInsert             Token = "pre-insert"
	TokenPreCollectionRecreate Token = "pre-collection-recreate"
	TokenPreCollectionRemove   Token = "pre-collection-remove"
	TokenPreCollectionUpdate   Token = "pre-collection-update"
	TokenPostLoad              Token = "post-load"
	TokenPostUpdate            Token = "post-update"
	TokenPostDelete            Token = "post-delete"
	TokenPostInsert            Token = "post-insert"
	TokenPostCommitUpdate      Token = "post-commit-update"
	TokenPostCommitDelete      Token = "post-commit-delete"
	TokenPostCommitInsert      Token = "post-commit-insert"
)

// Higher-level tokens matching the per-entity hook names. These bind to the
// same phases as their engine-level counterparts.
const (
	TokenBeforeInsert   Token = "beforeInsert"
	TokenAfterInsert    Token = "afterInsert"
	TokenBeforeUpdate   Token = "beforeUpdate"
	TokenAfterUpdate    Token = "afterUpdate"
	TokenBeforeDelete   Token = "beforeDelete"
	TokenAfterDelete    Token = "afterDelete"
	TokenBeforeValidate Token = "beforeValidate"
	TokenOnLoad         Token = "onLoad"
	TokenBeforeLoad     Token = "beforeLoad"
	TokenAfterLoad      Token = "afterLoad"
)

// tokenPhases maps each token that participates in dispatch to the phase it
// fires on. Tokens absent from this map are recognized but never dispatched.
var tokenPhases = map[Token]EventType{
	TokenPreInsert:        EventTypePreInsert,
	TokenBeforeInsert:     EventTypePreInsert,
	TokenPostInsert:       EventTypePostInsert,
	TokenPostCommitInsert: EventTypePostInsert,
	TokenAfterInsert:      EventTypePostInsert,
	TokenPreUpdate:        EventTypePreUpdate,
	TokenBeforeUpdate:     EventTypePreUpdate,
	TokenPostUpdate:       EventTypePostUpdate,
	TokenPostCommitUpdate: EventTypePostUpdate,
	TokenAfterUpdate:      EventTypePostUpdate,
	TokenPreDelete:        EventTypePreDelete,
	TokenBeforeDelete:     EventTypePreDelete,
	TokenPostDelete:       EventTypePostDelete,
	TokenPostCommitDelete: EventTypePostDelete,
	TokenAfterDelete:      EventTypePostDelete,
	TokenPreLoad:          EventTypeOnLoad,
	TokenOnLoad:           EventTypeOnLoad,
	TokenBeforeLoad:       EventTypeOnLoad,
	TokenPostLoad:         EventTypePostLoad,
	TokenAfterLoad:        EventTypePostLoad,
	TokenBeforeValidate:   EventTypeBeforeValidate,
}

// recognizedTokens is the full registration surface: engine-level tokens
// plus the higher-level hook-name tokens.
var recognizedTokens = map[Token]struct{}{
	TokenAutoFlush:             {},
	TokenMerge:                 {},
	TokenCreate:                {},
	TokenCreateOnFlush:         {},
	TokenDelete:                {},
	TokenDirtyCheck:            {},
	TokenEvict:                 {},
	TokenFlush:                 {},
	TokenFlushEntity:           {},
	TokenLoad:                  {},
	TokenLoadCollection:        {},
	TokenLock:                  {},
	TokenRefresh:               {},
	TokenReplicate:             {},
	TokenSaveUpdate:            {},
	TokenSave:                  {},
	TokenUpdate:                {},
	TokenPreLoad:               {},
	TokenPreUpdate:             {},
	TokenPreDelete:             {},
	TokenPreInsert:             {},
	TokenPreCollectionRecreate: {},
	TokenPreCollectionRemove:   {},
	TokenPreCollectionUpdate:   {},
	TokenPostLoad:              {},
	TokenPostUpdate:            {},
	TokenPostDelete:            {},
	TokenPostInsert:            {},
	TokenPostCommitUpdate:      {},
	TokenPostCommitDelete:      {},
	TokenPostCommitInsert:      {},
	TokenBeforeInsert:          {},
	TokenAfterInsert:           {},
	TokenBeforeUpdate:          {},
	TokenAfterUpdate:           {},
	TokenBeforeDelete:          {},
	TokenAfterDelete:           {},
	TokenBeforeValidate:        {},
	TokenOnLoad:                {},
	TokenBeforeLoad:            {},
	TokenAfterLoad:             {},
}

// Recognized reports whether t is a valid registration token.
func (t Token) Recognized() bool {
	_, ok := recognizedTokens[t]
	return ok
}

// Phase returns the dispatch phase t is bound to. ok is false for tokens
// that are recognized but never dispatched by this dispatcher.
func (t Token) Phase() (phase EventType, ok bool) {
	phase, ok = tokenPhases[t]
	return phase, ok
}
