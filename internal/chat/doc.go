// Package chat proxies user questions to a generative language API and keeps
// the conversation history in the key-value store.
package chat
