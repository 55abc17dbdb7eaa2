package handlers

// maxRequestBytes caps the size of accepted JSON request bodies.
const maxRequestBytes = 1 << 20
